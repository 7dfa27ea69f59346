// Package exampleapp is a small application assembled from independent registration
// units. The root types are owned by one unit and filled in by feature units that
// only know the names of the types they extend.
package exampleapp

import (
	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/registry"
)

// Prepares lists the "Type.field" coordinates contributed by feature units, in
// registration order. Resolvers use it to find which fields need argument prep.
type Prepares struct {
	Fields []string
}

func (p *Prepares) add(typ, field string) { p.Fields = append(p.Fields, typ+"."+field) }

// unit is held by pointer so that shared units register once.
type unit struct {
	name     string
	register func(*registry.Registry) *registry.Registry
}

func (u *unit) Register(r *registry.Registry) *registry.Registry { return u.register(r) }

// App returns every unit of the application.
func App() registry.Registrant {
	return registry.App(Query, Mutation, Users, Posts)
}

var Query = &unit{name: "query", register: func(r *registry.Registry) *registry.Registry {
	return r.SetRoot("Query").RegisterType(dynamic.NewObject("Query").
		SetDescription("Entry point for reads.").
		AddField(dynamic.NewField("version", "Server version.", dynamic.NamedNN(dynamic.String))))
}}

var Mutation = &unit{name: "mutation", register: func(r *registry.Registry) *registry.Registry {
	return r.SetMutation("Mutation").RegisterType(dynamic.NewObject("Mutation"))
}}

var Node = &unit{name: "node", register: func(r *registry.Registry) *registry.Registry {
	return r.RegisterType(dynamic.NewInterface("Node").
		AddField(dynamic.NewField("id", "", dynamic.NamedNN(dynamic.ID))))
}}

var Role = &unit{name: "role", register: func(r *registry.Registry) *registry.Registry {
	return r.RegisterType(dynamic.NewEnum("Role").AddEnumValue(
		dynamic.NewEnumValue("ADMIN", "Can manage every post."),
		dynamic.NewEnumValue("EDITOR", ""),
		dynamic.NewEnumValue("VIEWER", ""),
		dynamic.NewEnumValue("GUEST", "").Deprecate("Use VIEWER."),
	))
}}

var Time = &unit{name: "time", register: func(r *registry.Registry) *registry.Registry {
	return r.RegisterType(dynamic.NewScalar("Time").SetSpecifiedByURL("https://www.rfc-editor.org/rfc/rfc3339"))
}}
