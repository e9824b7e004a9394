package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sxwebdev/xopts/schema"
)

func TestNewSession(t *testing.T) {
	s, err := newSession("xopts-demo")
	if err != nil {
		t.Fatal(err)
	}

	usage := s.Usage()
	if !strings.HasPrefix(usage, "Usage:\n\nxopts-demo ") {
		t.Errorf("unexpected usage start: %q", usage)
	}
	if !strings.Contains(usage, "[--help] [file] ...") {
		t.Errorf("usage misses the help group: %q", usage)
	}
	if !strings.Contains(usage, "output format: ini, json, yaml, toml") {
		t.Errorf("usage misses the format list: %q", usage)
	}
}

func TestCheckPort(t *testing.T) {
	state := schema.NewState()
	port, err := state.Define(schema.Option{Section: "server", Name: "port", Kind: schema.Int})
	if err != nil {
		t.Fatal(err)
	}

	if err := checkPort(state); err != nil {
		t.Errorf("unset port: unexpected error %v", err)
	}

	state.Assign(port, int64(70000), schema.SourceCLI)
	if err := checkPort(state); err == nil || err.Error() != "Port 70000 is out of range." {
		t.Errorf("unexpected error %v", err)
	}

	state.Assign(port, int64(443), schema.SourceCLI)
	if err := checkPort(state); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestCheckFormat(t *testing.T) {
	state := schema.NewState()
	format, err := state.Define(schema.Option{Section: "output", Name: "format", Default: schema.Default("ini")})
	if err != nil {
		t.Fatal(err)
	}

	for _, value := range []string{"ini", "JSON", "yml", "toml"} {
		state.Assign(format, value, schema.SourceCLI)
		if err := checkFormat(state); err != nil {
			t.Errorf("%s: unexpected error %v", value, err)
		}
	}

	state.Assign(format, "xml", schema.SourceCLI)
	err = checkFormat(state)
	if err == nil {
		t.Fatal("expected an error for xml")
	}
	if diff := cmp.Diff(`Output format "xml" is not one of ini, json, yaml, toml.`, err.Error()); diff != "" {
		t.Error(diff)
	}
}

func TestUnsupportedFormatIsUsageError(t *testing.T) {
	config := filepath.Join(t.TempDir(), defaultConfigFile)
	if err := os.WriteFile(config, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := newSession("xopts-demo")
	if err != nil {
		t.Fatal(err)
	}

	err = s.Resolve([]string{"--config", config, "--token", "t", "--format=xml"})

	var ue *schema.UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a user error, got %v", err)
	}

	expect := []string{`Output format "xml" is not one of ini, json, yaml, toml.`}
	if diff := cmp.Diff(expect, ue.Violations); diff != "" {
		t.Error(diff)
	}
}

func TestSampleConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultConfigFile)

	cmd := newRootCommand("test")
	cmd.SetArgs([]string{"sample-config", "--write", path})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	sample := string(data)
	for _, want := range []string{
		"[server]\nhost = localhost\nport = 8080\ntimeout = 2.5\ndebug = false\n",
		"#token = <TOKEN>",
	} {
		if !strings.Contains(sample, want) {
			t.Errorf("sample misses %q:\n%s", want, sample)
		}
	}
	if strings.Contains(sample, "[cmd]") {
		t.Errorf("sample must not contain the cmd section:\n%s", sample)
	}

	var out bytes.Buffer
	cmd = newRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sample-config"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(sample, out.String()); diff != "" {
		t.Error(diff)
	}
}

func TestMarkdownCommand(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"markdown"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"| `auth.token`", "`-p, --port`"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("markdown misses %q", want)
		}
	}
}
