package flag_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sxwebdev/xopts/plugins"
	"github.com/sxwebdev/xopts/plugins/flag"
	"github.com/sxwebdev/xopts/schema"
)

func newState(t *testing.T) *schema.State {
	t.Helper()

	state := schema.NewState()
	for _, o := range []schema.Option{
		{Section: "foobar", Name: "config", IsConfigFile: true, CmdName: "config", CmdShortName: "c"},
		{Section: "foobar", Name: "num", Kind: schema.Int, CmdName: "num", CmdShortName: "n"},
		{Section: "foobar", Name: "dec", Kind: schema.Float, CmdName: "dec", CmdShortName: "d"},
		{Section: "foobar", Name: "flag", Kind: schema.Bool, CmdName: "flag", CmdShortName: "f"},
		{Section: "foobar", Name: "short", CmdShortName: "s", Default: schema.Default("x")},
		{Section: "foobar", Name: "help", Kind: schema.Bool, CmdName: "help", IsHelp: true},
	} {
		if _, err := state.Define(o); err != nil {
			t.Fatal(err)
		}
	}

	return state
}

func parse(state *schema.State, args ...string) error {
	p := flag.New(args).(plugins.Visitor)
	if err := p.Visit(state); err != nil {
		return err
	}

	return p.Parse()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		values map[string]any
		left   []string
	}{
		{
			name: "long",
			args: []string{"--config=/tmp/noname.conf", "--num=-1", "--dec=-2.0"},
			values: map[string]any{
				"config": "/tmp/noname.conf",
				"num":    int64(-1),
				"dec":    -2.0,
			},
			left: []string{},
		},
		{
			name: "long with flag",
			args: []string{"--config=/tmp/noname.conf", "--num=0", "--dec=0.0", "--flag"},
			values: map[string]any{
				"config": "/tmp/noname.conf",
				"num":    int64(0),
				"dec":    0.0,
				"flag":   true,
			},
			left: []string{},
		},
		{
			name: "short stops at lone dash",
			args: []string{"-c", "/tmp/noname.conf", "-n", "0", "-", "0.0", "-f"},
			values: map[string]any{
				"config": "/tmp/noname.conf",
				"num":    int64(0),
			},
			left: []string{"-", "0.0", "-f"},
		},
		{
			name: "negative values",
			args: []string{"-n", "-2", "-d", "-0.3", "file"},
			values: map[string]any{
				"num": int64(-2),
				"dec": -0.3,
			},
			left: []string{"file"},
		},
		{
			name:   "short only",
			args:   []string{"-s", "y", "--", "--flag"},
			values: map[string]any{"short": "y"},
			left:   []string{"--flag"},
		},
		{
			name:   "grouped booleans",
			args:   []string{"-fn5"},
			values: map[string]any{"flag": true, "num": int64(5)},
			left:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(t)

			if err := parse(state, tt.args...); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tt.values, state.Values["foobar"]); diff != "" {
				t.Error(diff)
			}

			for name := range tt.values {
				o, _ := state.Registry.Lookup("foobar", name)
				if o.SetBy() != schema.SourceCLI {
					t.Errorf("%s: expected source %s, got %s", name, schema.SourceCLI, o.SetBy())
				}
			}

			if diff := cmp.Diff(tt.left, state.Args); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseConfigPath(t *testing.T) {
	state := newState(t)

	if err := parse(state, "-c", "app.conf"); err != nil {
		t.Fatal(err)
	}

	if state.ConfigPath != "app.conf" {
		t.Errorf("expected config path app.conf, got %q", state.ConfigPath)
	}
}

func TestParseReplacesArgs(t *testing.T) {
	state := newState(t)

	if err := parse(state, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, state.Args); diff != "" {
		t.Error(diff)
	}

	if err := parse(state, "--num=1"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{}, state.Args); diff != "" {
		t.Error(diff)
	}
}

func TestParseHelp(t *testing.T) {
	state := newState(t)

	if err := parse(state, "--num=bad", "--help"); !errors.Is(err, plugins.ErrUsage) {
		t.Errorf("expected ErrUsage, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown flag",
			args: []string{"--nope"},
			want: "Could not parse the command line: unknown flag: --nope.",
		},
		{
			name: "unknown short flag",
			args: []string{"-x"},
			want: "Could not parse the command line: unknown shorthand flag: 'x' in -x.",
		},
		{
			name: "bad integer",
			args: []string{"--num=abc"},
			want: "Could not parse command line option num: it must be of type integer.",
		},
		{
			name: "bool with value",
			args: []string{"--flag=false"},
			want: "Command line option --flag does not take a value.",
		},
		{
			name: "both bad",
			args: []string{"--num=abc", "--dec=x"},
			want: "Could not parse command line option num: it must be of type integer.\n" +
				"Could not parse command line option dec: it must be of type float.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(newState(t), tt.args...)
			if !schema.IsUserError(err) {
				t.Fatalf("expected a user error, got %v", err)
			}

			if diff := cmp.Diff(tt.want, err.Error()); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestHiddenNameIsNotReachable(t *testing.T) {
	state := newState(t)

	if err := parse(state, "---foobar.short=y"); !schema.IsUserError(err) {
		t.Fatalf("expected a user error, got %v", err)
	}

	if v, ok := state.Lookup("foobar", "short"); ok {
		t.Errorf("short must stay unset, got %v", v)
	}
}
