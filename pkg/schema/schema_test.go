package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		kind  Kind
		min   float64
		max   float64
	}{
		{"string", String(), KindString, 1, 9},
		{"number", Number(), KindNumber, 1, 9},
		{"integer", Integer(), KindInteger, 1, 9},
		{"boolean", Boolean(), KindBoolean, 0, 0},
		{"array", Array(Integer()), KindArray, 1, 9},
		{"nested", Nested(MustNew()), KindNested, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.field.Kind())
			assert.True(t, tt.field.IsRequired())
			assert.Equal(t, tt.min, tt.field.Min())
			assert.Equal(t, tt.max, tt.field.Max())
		})
	}
}

func TestConstructors_Options(t *testing.T) {
	f := String(Optional(), Range(2, 4))
	assert.False(t, f.IsRequired())
	assert.Equal(t, 2.0, f.Min())
	assert.Equal(t, 4.0, f.Max())

	g := Integer(Required(false), Required(true))
	assert.True(t, g.IsRequired())
}

func TestArray_AcceptsAnyInner(t *testing.T) {
	inner := MustNew(Named("id", Integer()))
	for _, f := range []*Field{
		String(),
		Array(Boolean()),
		MustObject(String(), Number()),
		Nested(inner),
	} {
		arr := Array(f, Range(2, 2))
		assert.Same(t, f, arr.Inner())
	}
}

func TestObject_KeyValidation(t *testing.T) {
	for _, k := range BasicKinds() {
		t.Run(string(k), func(t *testing.T) {
			var key *Field
			switch k {
			case KindString:
				key = String()
			case KindBoolean:
				key = Boolean()
			case KindNumber:
				key = Number()
			case KindInteger:
				key = Integer()
			}
			f, err := Object(key, Array(String()))
			require.NoError(t, err)
			assert.Equal(t, KindObject, f.Kind())
			assert.Same(t, key, f.Key())
		})
	}

	rejected := map[string]*Field{
		"array":  Array(String()),
		"object": MustObject(String(), String()),
		"nested": Nested(MustNew()),
	}
	for name, key := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			f, err := Object(key, Boolean())
			assert.Nil(t, f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidKey))
			assert.Contains(t, err.Error(), "string,boolean,number,integer")
		})
	}

	t.Run("nil key", func(t *testing.T) {
		_, err := Object(nil, Boolean())
		assert.ErrorIs(t, err, ErrNilField)
	})

	t.Run("MustObject panics", func(t *testing.T) {
		assert.Panics(t, func() { MustObject(Array(String()), Boolean()) })
	})
}

func TestNested_SharesSchema(t *testing.T) {
	inner := MustNew(Named("x", Integer()))
	a := Nested(inner)
	b := Nested(inner, Optional())

	assert.Same(t, inner, a.Schema())
	assert.Same(t, inner, b.Schema())
	assert.False(t, b.IsRequired())
}

func TestNew(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		s, err := New(
			Named("z", String()),
			Named("a", Integer()),
			Named("m", Boolean()),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, s.Names())
		assert.Equal(t, 3, s.Len())

		f, ok := s.Get("a")
		require.True(t, ok)
		assert.Equal(t, KindInteger, f.Kind())

		_, ok = s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := New(Named("a", String()), Named("a", Integer()))
		assert.ErrorIs(t, err, ErrDuplicateField)
	})

	t.Run("nil field", func(t *testing.T) {
		_, err := New(Named("a", nil))
		assert.ErrorIs(t, err, ErrNilField)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := New(Named("", String()))
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("MustNew panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(Named("a", String()), Named("a", String())) })
	})
}

func TestFromMap_SortsNames(t *testing.T) {
	s, err := FromMap(map[string]*Field{
		"b": String(),
		"a": Integer(),
		"c": Boolean(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
}

func TestFields_ReturnsCopy(t *testing.T) {
	s := MustNew(Named("a", String()), Named("b", Integer()))
	fields := s.Fields()
	fields[0] = Named("hijacked", Boolean())

	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestAll_YieldsInOrder(t *testing.T) {
	s := MustNew(Named("a", String()), Named("b", Integer()), Named("c", Boolean()))

	var names []string
	for name, f := range s.All() {
		got, ok := s.Get(name)
		require.True(t, ok)
		assert.Same(t, got, f)
		names = append(names, name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	names = names[:0]
	for name := range s.All() {
		names = append(names, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Integer ")
	require.NoError(t, err)
	assert.Equal(t, KindInteger, got)

	_, err = ParseKind("date")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSummary(t *testing.T) {
	user := MustNew(
		Named("first_name", String()),
		Named("last_name", String()),
		Named("code", Array(Integer(Optional()))),
	)
	res := MustNew(
		Named("mapping", MustObject(String(Range(1, 1)), Boolean())),
		Named("status", Integer()),
		Named("data", Array(Nested(user))),
		Named("lookup", MustObject(Integer(), Array(Number()))),
	)

	data, err := json.Marshal(res.Summary())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mapping": {"string": "boolean"},
		"status": "integer",
		"data": [{"first_name": "string", "last_name": "string", "code": ["integer"]}],
		"lookup": {"integer": ["number"]}
	}`, string(data))
	assert.Equal(t, `{"mapping":{"string":"boolean"},"status":"integer","data":[{"first_name":"string","last_name":"string","code":["integer"]}],"lookup":{"integer":["number"]}}`, string(data))
}
