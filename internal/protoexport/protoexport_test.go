package protoexport_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/internal/protoexport"
)

func testSchema(t *testing.T) *dynamic.Schema {
	t.Helper()
	b := dynamic.Build("Query", "", "")
	b.Register(dynamic.NewObject("Query").AddField(dynamic.NewField("me", "", dynamic.Named("User"))))
	b.Register(dynamic.NewInterface("Node").AddField(dynamic.NewField("id", "", dynamic.NamedNN(dynamic.ID))))
	b.Register(dynamic.NewEnum("Role").AddEnumValue(
		dynamic.NewEnumValue("ADMIN", "Full access"),
		dynamic.NewEnumValue("VIEWER", ""),
	))
	b.Register(dynamic.NewScalar("Time"))
	b.Register(dynamic.NewObject("User").SetDescription("A person").AddInterface("Node").AddField(
		dynamic.NewField("id", "", dynamic.NamedNN(dynamic.ID)),
		dynamic.NewField("displayName", "Shown in the UI", dynamic.Named(dynamic.String)),
		dynamic.NewField("age", "", dynamic.NamedNN(dynamic.Int)),
		dynamic.NewField("score", "", dynamic.Named(dynamic.Float)),
		dynamic.NewField("active", "", dynamic.NamedNN(dynamic.Boolean)),
		dynamic.NewField("role", "", dynamic.Named("Role")),
		dynamic.NewField("joinedAt", "", dynamic.Named("Time")),
		dynamic.NewField("tags", "", dynamic.NamedNNListNN(dynamic.String)),
	))
	b.Register(dynamic.NewObject("Post").AddField(
		dynamic.NewField("author", "", dynamic.NamedNN("User")),
	))
	b.Register(dynamic.NewUnion("SearchResult").AddPossibleType("User", "Post"))
	b.Register(dynamic.NewInputObject("PostFilter").AddInputField(
		dynamic.NewInputValue("authorId", "", dynamic.Named(dynamic.ID)),
	))
	s, err := b.Finish()
	require.NoError(t, err)
	return s
}

func TestBuild(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{Package: "example.v1"})
	require.NoError(t, err)

	assert.Equal(t, "schema.proto", fd.Path())
	assert.Equal(t, protoreflect.FullName("example.v1"), fd.Package())
	assert.Nil(t, fd.Messages().ByName("Query"), "root types are not exported")

	user := fd.Messages().ByName("User")
	require.NotNil(t, user)

	tests := []struct {
		field    protoreflect.Name
		kind     protoreflect.Kind
		optional bool
		list     bool
	}{
		{"id", protoreflect.StringKind, false, false},
		{"display_name", protoreflect.StringKind, true, false},
		{"age", protoreflect.Int32Kind, false, false},
		{"score", protoreflect.DoubleKind, true, false},
		{"active", protoreflect.BoolKind, false, false},
		{"role", protoreflect.EnumKind, true, false},
		{"joined_at", protoreflect.StringKind, true, false},
		{"tags", protoreflect.StringKind, false, true},
	}
	for _, tt := range tests {
		f := user.Fields().ByName(tt.field)
		require.NotNil(t, f, tt.field)
		assert.Equal(t, tt.kind, f.Kind(), tt.field)
		assert.Equal(t, tt.optional, f.HasOptionalKeyword(), tt.field)
		assert.Equal(t, tt.optional, f.HasPresence(), tt.field)
		assert.Equal(t, tt.list, f.IsList(), tt.field)
		assert.Positive(t, int(f.Number()), tt.field)
	}

	author := fd.Messages().ByName("Post").Fields().ByName("author")
	require.NotNil(t, author)
	assert.Equal(t, protoreflect.Name("User"), author.Message().Name())

	filter := fd.Messages().ByName("PostFilter")
	require.NotNil(t, filter)
	assert.NotNil(t, filter.Fields().ByName("author_id"))
}

func TestBuildOneofs(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{})
	require.NoError(t, err)

	search := fd.Messages().ByName("SearchResult")
	require.NotNil(t, search)
	value := search.Oneofs().ByName("value")
	require.NotNil(t, value)
	assert.Equal(t, 2, value.Fields().Len())

	node := fd.Messages().ByName("Node")
	require.NotNil(t, node)
	choice := node.Fields().ByName("user")
	require.NotNil(t, choice)
	assert.Equal(t, protoreflect.Name("User"), choice.Message().Name())
}

func TestBuildEnum(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{})
	require.NoError(t, err)

	role := fd.Enums().ByName("Role")
	require.NotNil(t, role)
	require.Equal(t, 3, role.Values().Len())
	zero := role.Values().ByNumber(0)
	require.NotNil(t, zero)
	assert.Equal(t, protoreflect.Name("ROLE_UNSPECIFIED"), zero.Name())
	assert.NotNil(t, role.Values().ByName("ROLE_ADMIN"))
	assert.NotNil(t, role.Values().ByName("ROLE_VIEWER"))
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := protoexport.Build(testSchema(t), protoexport.Options{})
	require.NoError(t, err)
	b, err := protoexport.Build(testSchema(t), protoexport.Options{})
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, protoexport.Render(a, &bufA))
	require.NoError(t, protoexport.Render(b, &bufB))
	assert.Equal(t, bufA.String(), bufB.String())
	assert.Contains(t, bufA.String(), `syntax = "proto3";`)
	assert.Contains(t, bufA.String(), "message User {")
	assert.Contains(t, bufA.String(), "A person")
}

func TestCustomScalarMapping(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{
		Scalars: map[string]protoreflect.Kind{"Time": protoreflect.Int64Kind},
	})
	require.NoError(t, err)
	f := fd.Messages().ByName("User").Fields().ByName("joined_at")
	assert.Equal(t, protoreflect.Int64Kind, f.Kind())
}

func TestBuildRejectsRootReference(t *testing.T) {
	s, err := dynamic.Build("Query", "", "").
		Register(dynamic.NewObject("Query").AddField(dynamic.NewField("ok", "", dynamic.Named(dynamic.Boolean)))).
		Register(dynamic.NewObject("Viewer").AddField(dynamic.NewField("query", "", dynamic.Named("Query")))).
		Finish()
	require.NoError(t, err)

	_, err = protoexport.Build(s, protoexport.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Viewer.query")
}

func TestWriteFile(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{Path: "example/v1/schema.proto"})
	require.NoError(t, err)

	dir := t.TempDir()
	fp, err := protoexport.WriteFile(fd, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example", "v1", "schema.proto"), fp)

	content, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(content), "enum Role {")
}

func TestRenderMarksNullableFieldsOptional(t *testing.T) {
	fd, err := protoexport.Build(testSchema(t), protoexport.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, protoexport.Render(fd, &buf))
	assert.Regexp(t, `optional string display_name = \d+;`, buf.String())
	assert.Regexp(t, `\n\s*string id = \d+;`, buf.String())
}

func TestEnumValueNamedUnspecifiedIsKept(t *testing.T) {
	s, err := dynamic.Build("Query", "", "").
		Register(dynamic.NewObject("Query").AddField(dynamic.NewField("state", "", dynamic.Named("State")))).
		Register(dynamic.NewEnum("State").AddEnumValue(
			dynamic.NewEnumValue("UNSPECIFIED", ""),
			dynamic.NewEnumValue("READY", ""),
		)).
		Finish()
	require.NoError(t, err)

	fd, err := protoexport.Build(s, protoexport.Options{})
	require.NoError(t, err)
	state := fd.Enums().ByName("State")
	require.NotNil(t, state)
	assert.Equal(t, 3, state.Values().Len())
	assert.Equal(t, protoreflect.EnumNumber(0), state.Values().ByName("STATE_UNSPECIFIED").Number())
	kept := state.Values().ByName("STATE_UNSPECIFIED_VALUE")
	require.NotNil(t, kept)
	assert.NotZero(t, kept.Number())
}
