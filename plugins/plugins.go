// Package plugins describes the xopts source interface.
// it exists so the source packages can share the session state without
// circular deps.
package plugins

import (
	"errors"

	"github.com/sxwebdev/xopts/schema"
)

// Plugin is the common interface for all xopts sources.
type Plugin interface {
	Parse() error
}

// Visitor is the interface for plugins that work on the session state:
// Visit hands them the state, Parse does the work.
type Visitor interface {
	Plugin

	Visit(state *schema.State) error
}

// ErrUsage is returned when the user has requested the usage message
// via the help flag.
var ErrUsage = errors.New("xopts: usage request")
