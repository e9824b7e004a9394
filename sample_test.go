package xopts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sxwebdev/xopts/schema"
)

func sampleOptions() []schema.Option {
	return []schema.Option{
		{Section: "sec", Name: "foo", Default: schema.Default("foo")},
		{Section: "sec", Name: "bar", Kind: schema.Int, Default: schema.Default(-1)},
		{Section: "sec", Name: "baz", Kind: schema.Float, Default: schema.Default(-0.1)},
		{Section: "sec", Name: "hum", Kind: schema.Bool, Default: schema.Default(true)},
		{Section: "sec", Name: "dum", Kind: schema.Bool, Default: schema.Default(false)},
		{Section: "sec", Name: "ref", Default: schema.Default("%(foo)s")},
		{Section: "odd", Name: "padded", Default: schema.Default("  fõõ  ")},
		{Section: "odd", Name: "quoted", Default: schema.Default(`"quoted"`)},
		{Section: "odd", Name: "tick", Default: schema.Default("`tick`")},
		{Section: "odd", Name: "path", Default: schema.Default(`C:\dir\`)},
		{Section: "odd", Name: "comment", Default: schema.Default("a # b ; c")},
		{Section: "odd", Name: "empty", Default: schema.Default("")},
		{Section: "cmd", Name: "config", CmdName: "config", IsConfigFile: true, Default: schema.Default("app.conf")},
	}
}

const expectedSample = "[sec]\n" +
	"foo = foo\n" +
	"bar = -1\n" +
	"baz = -0.1\n" +
	"hum = true\n" +
	"dum = false\n" +
	"ref = %(foo)s\n" +
	"\n" +
	"[odd]\n" +
	"padded = `  fõõ  `\n" +
	"quoted = `\"quoted\"`\n" +
	"tick = \"\"\"`tick`\"\"\"\n" +
	"path = `C:\\dir\\`\n" +
	"comment = a # b ; c\n" +
	"empty = \n" +
	"\n"

func TestGenerateSampleConfig(t *testing.T) {
	var h harness
	s := h.session()
	mustDefine(t, s, sampleOptions()...)
	mustDefine(t, s, schema.Option{Section: "req", Name: "token"})

	expect := expectedSample + "[req]\n#token = <TOKEN>\n\n"

	if diff := cmp.Diff(expect, s.GenerateSampleConfig()); diff != "" {
		t.Error(diff)
	}
}

func TestSampleConfigRoundTrip(t *testing.T) {
	var h harness
	s := h.session()
	mustDefine(t, s, sampleOptions()...)

	path := filepath.Join(t.TempDir(), "nested", "sample.conf")
	if err := s.WriteSampleConfig(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expectedSample, string(data)); diff != "" {
		t.Error(diff)
	}

	reader := h.session()
	mustDefine(t, reader, sampleOptions()...)

	if err := reader.ParseConfig(path); err != nil {
		t.Fatal(err)
	}

	for _, o := range sampleOptions() {
		if o.IsConfigFile {
			continue
		}

		want, _ := o.Default.Get()
		switch v := want.(type) {
		case int:
			want = int64(v)
		}

		got, ok := reader.Lookup(o.Section, o.Name)
		if !ok {
			t.Errorf("%s.%s was not read back", o.Section, o.Name)
			continue
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s.%s: %s", o.Section, o.Name, diff)
		}

		if src := reader.Source(o.Section, o.Name); src != schema.SourceFile {
			t.Errorf("%s.%s: expected source %s, got %s", o.Section, o.Name, schema.SourceFile, src)
		}
	}

	if len(reader.UnknownFields()) != 0 {
		t.Errorf("unexpected unknown fields %v", reader.UnknownFields())
	}
}
