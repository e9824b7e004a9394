package xopts

import (
	"strings"
	"unicode/utf8"

	"github.com/sxwebdev/xopts/schema"
)

const cellSeparator = "|"

// Markdown renders a reference table of every defined option.
func (s *Session) Markdown() string {
	var table [][]string //nolint:prealloc

	table = append(table, []string{
		"**Option**", "**Flags**", "**Kind**", "**Required**", "**Default value**", "**Usage**",
	})

	sizes := make([]int, len(table[0]))
	for i, cell := range table[0] {
		sizes[i] = utf8.RuneCountInString(cell) + 2
	}

	for _, o := range s.state.Registry.All() {
		var defaultValue string
		if def, ok := o.Default.Get(); ok {
			defaultValue = schema.FormatValue(def)
		}

		location := "`" + o.Key() + "`"
		if o.CmdOnly {
			location += " (command line only)"
		}

		cell := []string{
			location,
			codeBlock(flagNames(o)),
			o.Kind.String(),
			boolIcon(o.Required()),
			codeBlock(defaultValue),
			strings.ReplaceAll(o.Help, cellSeparator, `\|`),
		}
		table = append(table, cell)

		for i, item := range cell {
			if size := utf8.RuneCountInString(item); size+2 > sizes[i] {
				sizes[i] = size + 2
			}
		}
	}

	var out strings.Builder
	for i, row := range table {
		_, _ = out.WriteString(cellSeparator)

		for j, cell := range row {
			size := utf8.RuneCountInString(" " + cell + " ")

			_, _ = out.WriteString(" " + cell + " ")
			_, _ = out.WriteString(strings.Repeat(" ", sizes[j]-size))

			if len(row)-1 != j {
				_, _ = out.WriteString(cellSeparator)
			}
		}

		if i == 0 {
			_, _ = out.WriteString(cellSeparator)
			_, _ = out.WriteRune('\n')

			_, _ = out.WriteString(cellSeparator)
			for j, item := range sizes {
				_, _ = out.WriteString(strings.Repeat("-", item))

				if len(sizes)-1 != j {
					_, _ = out.WriteString(cellSeparator)
				}
			}
		}

		_, _ = out.WriteString(cellSeparator)
		_, _ = out.WriteRune('\n')
	}

	return strings.TrimSpace(out.String())
}

func boolIcon(value bool) string {
	if value {
		return "✅"
	}

	return " "
}

func codeBlock(val string) string {
	if val == "" {
		return val
	}

	return "`" + val + "`"
}
