package exampleapp

import (
	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/registry"
)

var Users = &unit{name: "users", register: func(r *registry.Registry) *registry.Registry {
	r.Register(Node, Role, Time)
	r.RegisterType(dynamic.NewObject("User").
		SetDescription("A registered account.").
		AddInterface("Node").
		AddField(
			dynamic.NewField("id", "", dynamic.NamedNN(dynamic.ID)),
			dynamic.NewField("name", "", dynamic.NamedNN(dynamic.String)),
			dynamic.NewField("role", "", dynamic.NamedNN("Role")),
			dynamic.NewField("createdAt", "", dynamic.NamedNN("Time")),
		))

	r.ExpandObject("Query", "users",
		dynamic.NewField("user", "", dynamic.Named("User")).
			AddArgument(dynamic.NewInputValue("id", "", dynamic.NamedNN(dynamic.ID))),
		dynamic.NewField("users", "", dynamic.NamedNN("User").List()).
			AddArgument(dynamic.NewInputValue("role", "", dynamic.Named("Role"))),
	)
	r.ExpandObject("Mutation", "users",
		dynamic.NewField("createUser", "", dynamic.NamedNN("User")).AddArgument(
			dynamic.NewInputValue("name", "", dynamic.NamedNN(dynamic.String)),
			dynamic.NewInputValue("role", "", dynamic.NamedNN("Role")).SetDefault(dynamic.EnumLiteral("VIEWER")),
		),
	)

	prepares := dynamic.GetOrInit[Prepares](r.Data())
	prepares.add("Query", "users")
	prepares.add("Mutation", "createUser")
	return r
}}
