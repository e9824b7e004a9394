package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-ini/ini"
	"github.com/sxwebdev/xopts/schema"
)

// UnknownFieldsError represents an error when unknown keys are found in a
// configuration file.
type UnknownFieldsError struct {
	Path   string
	Fields []string
}

// Error implements the error interface.
func (e *UnknownFieldsError) Error() string {
	return fmt.Sprintf("Configuration file %s contains unknown options: %s.", e.Path, strings.Join(e.Fields, ", "))
}

// findUnknownFields returns the section.key entries of cfg that no
// config-file option claims, sorted. Keys of cmd-only options count as
// unknown since they are never read from the file.
func findUnknownFields(cfg *ini.File, reg *schema.Registry) []string {
	var unknown []string

	for _, sec := range cfg.Sections() {
		for _, key := range sec.Keys() {
			if sec.Name() != ini.DefaultSection {
				if o, ok := reg.Lookup(sec.Name(), key.Name()); ok && !o.CmdOnly {
					continue
				}
			}

			unknown = append(unknown, sec.Name()+"."+key.Name())
		}
	}

	sort.Strings(unknown)

	return unknown
}
