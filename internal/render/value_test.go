package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny_Kinds(t *testing.T) {
	assert.Equal(t, KindNull, FromAny(nil).Kind())
	assert.Equal(t, KindScalar, FromAny("s").Kind())
	assert.Equal(t, KindScalar, FromAny(true).Kind())
	assert.Equal(t, KindScalar, FromAny(3.14).Kind())
	assert.Equal(t, KindMapping, FromAny(map[string]any{"a": 1}).Kind())
	assert.Equal(t, KindSequence, FromAny([]any{1, 2}).Kind())
	assert.Equal(t, KindSequence, FromAny([]string{"a", "b"}).Kind())
}

func TestValue_Lookup(t *testing.T) {
	v := FromAny(map[string]any{
		"repo": map[string]any{"name": "demo"},
		"params": map[string]any{
			"nested": map[string]any{"deep": "value"},
		},
	})

	t.Run("single segment", func(t *testing.T) {
		got, ok := v.Lookup("repo")
		require.True(t, ok)
		assert.Equal(t, KindMapping, got.Kind())
	})

	t.Run("nested segments", func(t *testing.T) {
		got, ok := v.Lookup("params.nested.deep")
		require.True(t, ok)
		out, err := got.Render()
		require.NoError(t, err)
		assert.Equal(t, "value", out)
	})

	t.Run("missing leaf", func(t *testing.T) {
		_, ok := v.Lookup("repo.missing")
		assert.False(t, ok)
	})

	t.Run("missing intermediate", func(t *testing.T) {
		_, ok := v.Lookup("nothing.here")
		assert.False(t, ok)
	})

	t.Run("descending through a scalar fails", func(t *testing.T) {
		_, ok := v.Lookup("repo.name.more")
		assert.False(t, ok)
	})
}

func TestValue_Render(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "hello", want: "hello"},
		{name: "bool", input: true, want: "true"},
		{name: "integral float", input: float64(3), want: "3"},
		{name: "fractional float", input: 2.5, want: "2.5"},
		{name: "int", input: 42, want: "42"},
		{name: "null", input: nil, want: "null"},
		{name: "sequence", input: []any{"a", "b"}, want: `["a","b"]`},
		{name: "mapping", input: map[string]any{"k": "v"}, want: `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input).Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
