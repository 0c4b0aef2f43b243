package metadata

import (
	"github.com/thorn-jmh/errorst"
)

var (
	ErrGetComplexType     = errorst.NewError("cannot get complex type")
	ErrUnknownComplexType = errorst.Wrap(ErrGetComplexType, "no such extra object")
)

// Registry resolves complex-type names against the extra-object definitions
// of a source document.
type Registry struct {
	defs Definitions
}

// NewRegistry builds a registry over the given definitions. A nil map is
// valid and resolves nothing.
func NewRegistry(defs Definitions) *Registry {
	return &Registry{defs: defs}
}

// Lookup returns the option tree registered for a complex-type name.
func (r *Registry) Lookup(name string) (*Option, bool) {
	opt, ok := r.defs[name]
	return opt, ok
}

// Resolve is the erroring form of Lookup for callers that treat a missing
// definition as a failure rather than a skip.
func (r *Registry) Resolve(name string) (*Option, error) {
	opt, ok := r.defs[name]
	if !ok {
		return nil, errorst.Wrap(ErrUnknownComplexType, "complex type <%s>", name)
	}
	return opt, nil
}
