// Package registry collects GraphQL type definitions from independent registration
// units and assembles them into a dynamic schema.
//
// Units register direct definitions with RegisterType and extend objects owned by
// other units with UpdateObject or ExpandObject. Extensions are queued and applied
// by CreateSchema once every unit has run, so the order in which units register
// does not matter:
//
//	r := registry.New().SetRoot("Query")
//	r.Register(users.Unit, posts.Unit)
//	b, err := r.CreateSchema(ctx)
package registry

import (
	"context"
	"reflect"
	"sort"
	"time"

	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/internal/buildid"
	"github.com/hanpama/dyngraph/internal/ctxlog"
	"github.com/hanpama/dyngraph/internal/eventbus"
	"github.com/hanpama/dyngraph/internal/events"
)

// ObjectFunc transforms an object definition. It receives the current definition
// and returns the one stored in its place.
type ObjectFunc func(*dynamic.Type) *dynamic.Type

type pendingExpansion struct {
	target    string
	expansion string
	apply     ObjectFunc
}

// Registry accumulates definitions for a single schema. It is not safe for
// concurrent use and produces at most one schema.
type Registry struct {
	root         string
	mutation     string
	subscription string

	objects map[string]*dynamic.Type
	types   []*dynamic.Type
	typeIdx map[string]int // name -> index in types

	pending []pendingExpansion
	units   map[any]struct{}
	data    *dynamic.Data

	consumed bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		objects: make(map[string]*dynamic.Type),
		typeIdx: make(map[string]int),
		units:   make(map[any]struct{}),
		data:    dynamic.NewData(),
	}
}

// SetRoot records the query root type name. The last call wins.
func (r *Registry) SetRoot(name string) *Registry {
	r.root = name
	return r
}

// SetMutation records the mutation root type name.
func (r *Registry) SetMutation(name string) *Registry {
	r.mutation = name
	return r
}

// SetSubscription records the subscription root type name.
func (r *Registry) SetSubscription(name string) *Registry {
	r.subscription = name
	return r
}

// RegisterType stores a definition. Objects are keyed by name and a later object
// with the same name replaces the earlier one. Other kinds keep their registration
// order; registering a second one under an existing name replaces it in place.
func (r *Registry) RegisterType(t *dynamic.Type) *Registry {
	if t == nil {
		return r
	}
	if t.IsObject() {
		r.objects[t.Name] = t
		return r
	}
	if i, ok := r.typeIdx[t.Name]; ok {
		r.types[i] = t
		return r
	}
	r.typeIdx[t.Name] = len(r.types)
	r.types = append(r.types, t)
	return r
}

// UpdateObject queues fn to run against the object named target once it exists.
// expansion labels the request in diagnostics. Nothing is checked until CreateSchema.
// The result keeps the target's name; a nil fn, or a nil result, leaves the
// definition unchanged.
func (r *Registry) UpdateObject(target, expansion string, fn ObjectFunc) *Registry {
	r.pending = append(r.pending, pendingExpansion{target: target, expansion: expansion, apply: fn})
	return r
}

// ExpandObject queues fields to be appended to the object named target.
func (r *Registry) ExpandObject(target, expansion string, fields ...*dynamic.Field) *Registry {
	return r.UpdateObject(target, expansion, func(t *dynamic.Type) *dynamic.Type {
		return t.AddField(fields...)
	})
}

// Data returns the schema data that CreateSchema hands to the schema builder.
func (r *Registry) Data() *dynamic.Data { return r.data }

// Register runs each unit against r. A comparable unit that already ran is skipped,
// which lets composite units share dependencies and reference each other.
func (r *Registry) Register(units ...Registrant) *Registry {
	for _, u := range units {
		if u == nil {
			continue
		}
		if v := reflect.ValueOf(u); v.Comparable() {
			if _, done := r.units[u]; done {
				continue
			}
			r.units[u] = struct{}{}
		}
		u.Register(r)
	}
	return r
}

// CreateSchema applies every queued expansion, then folds the definitions into a
// schema builder: objects sorted by name, then the other kinds in registration
// order. The registry is consumed by the call whatever its outcome.
//
// Errors are *UnresolvedError when an expansion target never appears, ErrNoRoot
// when no root was set and ErrConsumed on a second call.
func (r *Registry) CreateSchema(ctx context.Context) (_ *dynamic.SchemaBuilder, err error) {
	if r.consumed {
		return nil, ErrConsumed
	}
	r.consumed = true

	ctx, bid := buildid.NewContext(ctx)
	logger := ctxlog.FromContext(ctx).With("build", bid)
	started := time.Now()

	eventbus.Publish(ctx, events.SchemaBuildStart{
		Root:         r.root,
		Mutation:     r.mutation,
		Subscription: r.subscription,
		Objects:      len(r.objects),
		Types:        len(r.types),
		Pending:      len(r.pending),
	})

	passes := 0
	defer func() {
		finish := events.SchemaBuildFinish{
			Passes:   passes,
			Objects:  len(r.objects),
			Types:    len(r.types),
			Err:      err,
			Duration: time.Since(started),
		}
		for _, p := range r.pending {
			finish.Unresolved = append(finish.Unresolved, Unresolved{p.target, p.expansion}.String())
		}
		eventbus.Publish(ctx, finish)
	}()

	for len(r.pending) > 0 {
		passes++
		queue := r.pending
		r.pending = nil
		progressed := false
		for _, p := range queue {
			obj, ok := r.objects[p.target]
			if !ok {
				r.pending = append(r.pending, p)
				continue
			}
			delete(r.objects, p.target)
			if p.apply != nil {
				if next := p.apply(obj); next != nil {
					obj = next
				}
			}
			obj.Name = p.target
			r.objects[p.target] = obj
			progressed = true
			logger.Debug("expansion applied", "target", p.target, "expansion", p.expansion, "pass", passes)
			eventbus.Publish(ctx, events.ExpansionApplied{Target: p.target, Expansion: p.expansion, Pass: passes})
		}
		if !progressed {
			uerr := &UnresolvedError{Pending: make([]Unresolved, len(r.pending))}
			for i, p := range r.pending {
				uerr.Pending[i] = Unresolved{Target: p.target, Expansion: p.expansion}
			}
			logger.Error("unresolved expansions", "targets", uerr.Targets(), "pass", passes)
			return nil, uerr
		}
		logger.Debug("pass finished", "pass", passes, "remaining", len(r.pending))
	}

	if r.root == "" {
		logger.Error("no root object defined")
		return nil, ErrNoRoot
	}

	b := dynamic.Build(r.root, r.mutation, r.subscription).WithData(r.data)
	names := make([]string, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.Register(r.objects[name])
	}
	for _, t := range r.types {
		b.Register(t)
	}
	logger.Debug("schema assembled", "objects", len(names), "types", len(r.types), "passes", passes)
	return b, nil
}

// MustCreateSchema is like CreateSchema but panics on error.
func (r *Registry) MustCreateSchema(ctx context.Context) *dynamic.SchemaBuilder {
	b, err := r.CreateSchema(ctx)
	if err != nil {
		panic(err)
	}
	return b
}
