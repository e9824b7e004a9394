package loader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sxwebdev/xopts/plugins/loader"
	"github.com/sxwebdev/xopts/schema"
)

const unknownConfig = `
top = level

[sec]
foo = 1
extra = 2

[other]
key = 3

[cmd]
help = true
`

func unknownState(t *testing.T) *schema.State {
	return define(t,
		schema.Option{Section: "sec", Name: "foo"},
		schema.Option{Section: "cmd", Name: "help", Kind: schema.Bool, CmdName: "help", IsHelp: true},
	)
}

func TestUnknownFields(t *testing.T) {
	path := writeFile(t, unknownConfig)
	state := unknownState(t)

	f, err := load(state, path, loader.Config{})
	if err != nil {
		t.Fatal(err)
	}

	expect := []string{"DEFAULT.top", "cmd.help", "other.key", "sec.extra"}
	if diff := cmp.Diff(expect, f.UnknownFields()); diff != "" {
		t.Error(diff)
	}

	if got := state.Values["sec"]["foo"]; got != "1" {
		t.Errorf("expected foo to be read, got %v", got)
	}
}

func TestDisallowUnknownFields(t *testing.T) {
	path := writeFile(t, unknownConfig)
	state := unknownState(t)

	_, err := load(state, path, loader.Config{DisallowUnknownFields: true})
	if !schema.IsUserError(err) {
		t.Fatalf("expected a user error, got %v", err)
	}

	expect := "Configuration file " + path + " contains unknown options: DEFAULT.top, cmd.help, other.key, sec.extra."
	if diff := cmp.Diff(expect, err.Error()); diff != "" {
		t.Error(diff)
	}
}

func TestUnknownFieldsError(t *testing.T) {
	err := &loader.UnknownFieldsError{Path: "/etc/app.conf", Fields: []string{"a.b"}}

	if diff := cmp.Diff("Configuration file /etc/app.conf contains unknown options: a.b.", err.Error()); diff != "" {
		t.Error(diff)
	}
}
