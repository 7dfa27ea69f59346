package buildid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok, "unexpected id in empty context")
}

func TestNestedBuildsGetDistinctIDs(t *testing.T) {
	outer, a := NewContext(context.Background())
	inner, b := NewContext(outer)
	got, _ := FromContext(inner)
	assert.Equal(t, b, got)
	assert.NotEqual(t, a, b)
}
