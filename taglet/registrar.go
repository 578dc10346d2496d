package taglet

import (
	"github.com/goliatone/go-errors"
)

// Registrar contributes one or more handlers to a registry. It is the
// rendering of the "-taglet" option: instead of resolving handler
// classes by name at runtime, callers supply an explicit table of
// named registrars.
type Registrar interface {
	RegisterTaglets(r *Registry) error
}

// RegistrarFunc adapts a plain function into a Registrar.
type RegistrarFunc func(r *Registry) error

func (f RegistrarFunc) RegisterTaglets(r *Registry) error {
	return f(r)
}

// Registrars is the lookup table mapping a qualified registrar name to
// its implementation.
type Registrars map[string]Registrar

// Resolve returns the registrar registered under the given name.
func (rs Registrars) Resolve(name string) (Registrar, error) {
	reg, ok := rs[name]
	if !ok {
		return nil, errors.New("unknown taglet registrar", errors.CategoryValidation).
			WithTextCode("TAGLET_REGISTRAR_UNKNOWN").
			WithMetadata(map[string]any{
				"registrar": name,
			})
	}
	return reg, nil
}
