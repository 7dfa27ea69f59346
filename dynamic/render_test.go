package dynamic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := Build("Query", "Mutation", "")
	b.Register(NewEnum("Role").
		SetDescription("Access level").
		AddEnumValue(NewEnumValue("ADMIN", ""), NewEnumValue("GUEST", "").Deprecate("use VIEWER")))
	b.Register(NewInterface("Node").AddField(NewField("id", "", NamedNN(ID))))
	b.Register(NewObject("User").
		AddInterface("Node").
		AddField(NewField("id", "", NamedNN(ID)), NewField("role", "", Named("Role"))))
	b.Register(NewObject("Query").AddField(
		NewField("users", "", NamedNNListNN("User")).AddArgument(
			NewInputValue("first", "", Named(Int)).SetDefault(10),
			NewInputValue("role", "", Named("Role")).SetDefault(EnumLiteral("GUEST")),
		)))
	b.Register(NewInputObject("UserInput").AddInputField(
		NewInputValue("name", "Display name", NamedNN(String)),
		NewInputValue("tags", "", NamedNNList(String)).SetDefault([]any{"new"}),
	))
	b.Register(NewObject("Mutation").AddField(
		NewField("createUser", "", NamedNN("User")).AddArgument(NewInputValue("input", "", NamedNN("UserInput")))))
	b.Register(NewUnion("SearchResult").AddPossibleType("User"))
	b.Register(NewScalar("Time").SetSpecifiedByURL("https://example.com/time"))

	s, err := b.Finish()
	require.NoError(t, err)

	want := `type Mutation {
  createUser(input: UserInput!): User!
}

interface Node {
  id: ID!
}

type Query {
  users(first: Int = 10, role: Role = GUEST): [User!]!
}

"""
Access level
"""
enum Role {
  ADMIN
  GUEST @deprecated(reason: "use VIEWER")
}

union SearchResult = User

scalar Time @specifiedBy(url: "https://example.com/time")

type User implements Node {
  id: ID!
  role: Role
}

input UserInput {
  """
  Display name
  """
  name: String!
  tags: [String!] = ["new"]
}

schema {
  query: Query
  mutation: Mutation
}
`
	if diff := cmp.Diff(want, s.SDL()); diff != "" {
		t.Fatalf("SDL mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"a\"b", `"a\"b"`},
		{int32(3), "3"},
		{1.5, "1.5"},
		{true, "true"},
		{EnumLiteral("RED"), "RED"},
		{[]any{1, "x"}, `[1, "x"]`},
		{map[string]any{"b": 2, "a": 1}, "{a: 1, b: 2}"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, renderValue(tt.in)); diff != "" {
			t.Errorf("renderValue(%#v) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestRenderNil(t *testing.T) {
	require.Empty(t, Render(nil))
}
