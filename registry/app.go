package registry

import (
	"context"
	"fmt"

	"github.com/hanpama/dyngraph/dynamic"
)

// Registrant is a registration unit: one declared type, or a group of them.
type Registrant interface {
	Register(*Registry) *Registry
}

// RegistrantFunc adapts a function to Registrant. Function values are not
// comparable, so Register runs them every time they are passed.
type RegistrantFunc func(*Registry) *Registry

func (f RegistrantFunc) Register(r *Registry) *Registry { return f(r) }

// app groups units. It is held by pointer so that Register can recognise it.
type app struct {
	units []Registrant
}

// App returns a unit that registers every member in order.
func App(units ...Registrant) Registrant {
	return &app{units: units}
}

func (a *app) Register(r *Registry) *Registry { return r.Register(a.units...) }

// Build registers units into a fresh registry and finishes the resulting schema.
func Build(ctx context.Context, units ...Registrant) (*dynamic.Schema, error) {
	b, err := New().Register(units...).CreateSchema(ctx)
	if err != nil {
		return nil, err
	}
	s, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("finish schema: %w", err)
	}
	return s, nil
}
