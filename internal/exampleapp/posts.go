package exampleapp

import (
	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/registry"
)

var Posts = &unit{name: "posts", register: func(r *registry.Registry) *registry.Registry {
	r.Register(Node, Time)
	r.RegisterType(dynamic.NewObject("Post").
		AddInterface("Node").
		AddField(
			dynamic.NewField("id", "", dynamic.NamedNN(dynamic.ID)),
			dynamic.NewField("title", "", dynamic.NamedNN(dynamic.String)),
			dynamic.NewField("body", "", dynamic.Named(dynamic.String)),
			dynamic.NewField("author", "", dynamic.NamedNN("User")),
			dynamic.NewField("publishedAt", "", dynamic.Named("Time")),
		))
	r.RegisterType(dynamic.NewInputObject("PostFilter").AddInputField(
		dynamic.NewInputValue("authorId", "", dynamic.Named(dynamic.ID)),
		dynamic.NewInputValue("first", "", dynamic.Named(dynamic.Int)).SetDefault(20),
		dynamic.NewInputValue("after", "", dynamic.Named("Time")),
	))

	posts := func(t *dynamic.Type) *dynamic.Type {
		return t.AddField(dynamic.NewField("posts", "", dynamic.NamedNNListNN("Post")).
			AddArgument(dynamic.NewInputValue("filter", "", dynamic.Named("PostFilter"))))
	}
	r.UpdateObject("Query", "posts", posts)
	r.UpdateObject("User", "posts", func(t *dynamic.Type) *dynamic.Type {
		return posts(t.AddField(dynamic.NewField("postCount", "", dynamic.NamedNN(dynamic.Int))))
	})
	r.ExpandObject("Mutation", "posts",
		dynamic.NewField("publishPost", "", dynamic.NamedNN("Post")).AddArgument(
			dynamic.NewInputValue("title", "", dynamic.NamedNN(dynamic.String)),
			dynamic.NewInputValue("body", "", dynamic.Named(dynamic.String)),
		),
	)

	prepares := dynamic.GetOrInit[Prepares](r.Data())
	prepares.add("Query", "posts")
	prepares.add("User", "posts")
	return r
}}
