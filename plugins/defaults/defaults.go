// Package defaults provides default values for xopts
package defaults

import (
	"github.com/sxwebdev/xopts/schema"
)

// New returns a defaults plugin. It fills every option no source has set
// with its default and leaves everything else alone.
func New() *Visitor {
	return &Visitor{}
}

// Visitor is the defaults plugin.
type Visitor struct {
	state   *schema.State
	applied int
}

func (v *Visitor) Visit(state *schema.State) error {
	v.state = state
	return nil
}

func (v *Visitor) Parse() error {
	v.applied = 0

	for _, o := range v.state.Registry.All() {
		if o.SetBy() != schema.SourceUnset {
			continue
		}

		value, ok := o.Default.Get()
		if !ok {
			continue
		}

		v.state.Assign(o, value, schema.SourceDefault)
		v.applied++
	}

	return nil
}

// Applied returns how many defaults the last Parse assigned.
func (v *Visitor) Applied() int {
	return v.applied
}
