package xopts

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sxwebdev/xopts/schema"
)

// Usage renders the usage text: one or two synopsis lines per command
// group, then a table of option descriptions when any option has help.
func (s *Session) Usage() string {
	name := s.options.programName
	lines := []string{"Usage:", ""}

	groups, order := s.groups()
	spec, hasArgs := s.state.Registry.Args()

	var argLine string
	if hasArgs {
		argLine = spec.Usage()
	}

	if len(order) == 0 && argLine != "" {
		lines = append(lines, name+" "+argLine)
	}

	for _, group := range order {
		opts := groups[group]

		sort.SliceStable(opts, func(i, j int) bool {
			if opts[i].Required() != opts[j].Required() {
				return opts[i].Required()
			}
			return opts[i].Name < opts[j].Name
		})

		var shortLine, longLine []string
		for _, o := range opts {
			short, long := optionUsage(o)
			if short != "" {
				shortLine = append(shortLine, short)
			}
			if long != "" {
				longLine = append(longLine, long)
			}
		}

		if argLine != "" {
			shortLine = append(shortLine, argLine)
			longLine = append(longLine, argLine)
		}

		if len(shortLine) > 0 {
			lines = append(lines, name+" "+strings.Join(shortLine, " "))
		}
		if len(longLine) > 0 {
			lines = append(lines, name+" "+strings.Join(longLine, " "))
		}
	}

	usage := strings.Join(lines, "\n")

	if table := s.helpTable(); table != "" {
		usage += "\n\nOptions:\n" + table
	}

	return usage
}

// groups collects options exposing a flag by command group, keeping groups
// in the order they were first used.
func (s *Session) groups() (map[string][]*schema.Option, []string) {
	groups := make(map[string][]*schema.Option)
	var order []string

	for _, o := range s.state.Registry.All() {
		if !o.HasFlag() {
			continue
		}

		if _, ok := groups[o.CmdGroup]; !ok {
			order = append(order, o.CmdGroup)
		}

		groups[o.CmdGroup] = append(groups[o.CmdGroup], o)
	}

	return groups, order
}

// optionUsage returns the short and long synopsis forms of o. Either may be
// empty.
func optionUsage(o *schema.Option) (short, long string) {
	shortForm := func() string {
		if o.Kind == schema.Bool {
			return "-" + o.CmdShortName
		}
		return fmt.Sprintf("-%s <%s>", o.CmdShortName, o.ValueName())
	}

	longForm := func() string {
		if o.Kind == schema.Bool {
			return "--" + o.CmdName
		}
		return fmt.Sprintf("--%s=<%s>", o.CmdName, o.ValueName())
	}

	switch {
	case o.CmdShortName != "":
		short = shortForm()
	case o.CmdName != "" && o.Required():
		short = longForm()
	}

	switch {
	case o.CmdName != "":
		long = longForm()
	case o.CmdShortName != "" && o.Required():
		long = shortForm()
	}

	if !o.Required() {
		short = optional(short)
		long = optional(long)
	}

	return short, long
}

func optional(s string) string {
	if s == "" {
		return s
	}

	return "[" + s + "]"
}

// helpTable lists flag options that carry help text.
func (s *Session) helpTable() string {
	buf := bytes.NewBuffer(nil)
	w := tabwriter.NewWriter(buf, 0, 0, 4, ' ', 0)

	var rows int
	for _, o := range s.state.Registry.All() {
		if !o.HasFlag() || o.Help == "" {
			continue
		}

		fmt.Fprintf(w, "  %s\t%s\n", flagNames(o), o.Help)
		rows++
	}

	if rows == 0 {
		return ""
	}

	if err := w.Flush(); err != nil {
		return ""
	}

	return strings.TrimRight(buf.String(), "\n")
}

// flagNames renders "-s, --long", "-s" or "--long".
func flagNames(o *schema.Option) string {
	var names []string
	if o.CmdShortName != "" {
		names = append(names, "-"+o.CmdShortName)
	}
	if o.CmdName != "" {
		names = append(names, "--"+o.CmdName)
	}

	return strings.Join(names, ", ")
}
