package xopts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sxwebdev/xopts/schema"
)

// GenerateSampleConfig renders a configuration file skeleton: every option
// read from the file appears with its default, or as a commented
// placeholder when it has none. The output reads back through ParseConfig
// with every default unchanged.
func (s *Session) GenerateSampleConfig() string {
	var b strings.Builder

	for _, section := range s.state.Registry.Sections() {
		var lines []string
		for _, o := range s.state.Registry.Options(section) {
			if o.CmdOnly {
				continue
			}

			if def, ok := o.Default.Get(); ok {
				lines = append(lines, fmt.Sprintf("%s = %s", o.Name, quoteValue(schema.FormatValue(def))))
			} else {
				lines = append(lines, fmt.Sprintf("#%s = <%s>", o.Name, strings.ToUpper(o.Name)))
			}
		}

		if len(lines) == 0 {
			continue
		}

		fmt.Fprintf(&b, "[%s]\n", section)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// quoteValue protects values the INI reader would otherwise alter:
// surrounding blanks and quotes, line breaks and trailing backslashes.
func quoteValue(v string) string {
	risky := v != strings.TrimSpace(v) ||
		strings.ContainsAny(v, "\r\n") ||
		strings.HasPrefix(v, `"`) ||
		strings.HasPrefix(v, "'") ||
		strings.HasPrefix(v, "`") ||
		strings.HasSuffix(v, `\`)
	if !risky {
		return v
	}

	if strings.Contains(v, "`") {
		return `"""` + v + `"""`
	}

	return "`" + v + "`"
}

// WriteSampleConfig writes GenerateSampleConfig to path. The file is
// replaced atomically.
func (s *Session) WriteSampleConfig(path string) error {
	return atomicWriteFile(path, []byte(s.GenerateSampleConfig()))
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
