// Package export renders resolved options in common configuration formats.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-ini/ini"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/sxwebdev/xopts/schema"
)

// Format names an output format.
type Format string

const (
	INI  Format = "ini"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{INI, JSON, YAML, TOML}

// ParseFormat accepts a format name in any case, plus "yml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case INI, JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("unsupported export format %q", s)
}

// Entry is one resolved option.
type Entry struct {
	Name  string
	Value any
}

// Section holds the entries of one section in definition order.
type Section struct {
	Name    string
	Entries []Entry
}

// Document is a full set of sections in definition order.
type Document []Section

// Write renders doc to w.
func Write(w io.Writer, doc Document, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case INI:
		data, err = marshalINI(doc)
	case JSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(doc.mapSlice())
	case TOML:
		data, err = marshalTOML(doc)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}

	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	_, err = w.Write(data)

	return err
}

// MarshalJSON keeps sections and entries in definition order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, sec := range d {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSONKey(&buf, sec.Name); err != nil {
			return nil, err
		}

		buf.WriteByte('{')
		for j, e := range sec.Entries {
			if j > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSONKey(&buf, e.Name); err != nil {
				return nil, err
			}

			value, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')

	return nil
}

func (d Document) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(d))
	for _, sec := range d {
		entries := make(yaml.MapSlice, 0, len(sec.Entries))
		for _, e := range sec.Entries {
			entries = append(entries, yaml.MapItem{Key: e.Name, Value: e.Value})
		}

		out = append(out, yaml.MapItem{Key: sec.Name, Value: entries})
	}

	return out
}

func marshalINI(doc Document) ([]byte, error) {
	f := ini.Empty()

	for _, sec := range doc {
		s, err := f.NewSection(sec.Name)
		if err != nil {
			return nil, err
		}

		for _, e := range sec.Entries {
			if _, err := s.NewKey(e.Name, schema.FormatValue(e.Value)); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// marshalTOML writes tables sorted by name, as the encoder does for maps.
func marshalTOML(doc Document) ([]byte, error) {
	tables := make(map[string]map[string]any, len(doc))
	for _, sec := range doc {
		table := make(map[string]any, len(sec.Entries))
		for _, e := range sec.Entries {
			table[e.Name] = e.Value
		}

		tables[sec.Name] = table
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tables); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
