package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchema(t *testing.T) {
	s, err := LoadSchema("ok", "type Query { hello: String! }\nschema { query: Query }\n")
	require.NoError(t, err)
	require.NotNil(t, s.Query)
	assert.Equal(t, "Query", s.Query.Name)
	assert.Equal(t, Object, s.Types["Query"].Kind)
}

func TestLoadSchemaUnknownType(t *testing.T) {
	_, err := LoadSchema("bad", "type Query { ghost: Ghost }\n")
	require.Error(t, err)
	errs := Errors(err)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Ghost")
}

func TestParseSchemaSyntaxError(t *testing.T) {
	_, err := ParseSchema("broken", "type Query {")
	require.Error(t, err)
	assert.NotEmpty(t, Errors(err))
}
