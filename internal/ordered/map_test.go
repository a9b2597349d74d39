package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_PreservesOrder(t *testing.T) {
	m := New(3)
	m.Set("zeta", 1)
	m.Set("alpha", "a")
	m.Set("mid", true)
	m.Set("zeta", 2)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_MarshalJSON(t *testing.T) {
	inner := New(1)
	inner.Set("b", []any{1, 2})

	m := New(2)
	m.Set("z", inner)
	m.Set("a", "x")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":{"b":[1,2]},"a":"x"}`, string(data))
}

func TestMap_MarshalYAML(t *testing.T) {
	m := New(2)
	m.Set("second", 2)
	m.Set("first", 1)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "second: 2\nfirst: 1\n", string(data))
}

func TestMap_ToMap(t *testing.T) {
	inner := New(1)
	inner.Set("k", "v")
	m := New(1)
	m.Set("list", []any{inner})

	assert.Equal(t, map[string]any{
		"list": []any{map[string]any{"k": "v"}},
	}, m.ToMap())
}

func TestMap_NilSafe(t *testing.T) {
	var m *Map
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Keys())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestPlain(t *testing.T) {
	inner := New(1)
	inner.Set("k", 1)
	v := []any{inner, "s", []any{inner}}

	assert.Equal(t, []any{map[string]any{"k": 1}, "s", []any{map[string]any{"k": 1}}}, Plain(v))
	assert.Equal(t, 3.5, Plain(3.5))
}
