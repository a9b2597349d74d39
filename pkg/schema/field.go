package schema

import "fmt"

// Default bounds shared by every ranged constructor.
const (
	DefaultMin = 1
	DefaultMax = 9
)

// Field describes one node of a schema tree. Fields are created by the
// constructors in this package and are read-only afterwards.
type Field struct {
	kind     Kind
	required bool
	min, max float64

	inner  *Field  // array
	key    *Field  // object
	value  *Field  // object
	schema *Schema // nested
}

// Option adjusts a field while it is being constructed.
type Option func(*Field)

// Optional marks the field as not required.
func Optional() Option {
	return func(f *Field) { f.required = false }
}

// Required sets whether the field is required.
func Required(required bool) Option {
	return func(f *Field) { f.required = required }
}

// Range sets the Min/Max bounds. Ignored by kinds without bounds.
func Range(lo, hi float64) Option {
	return func(f *Field) {
		f.min = lo
		f.max = hi
	}
}

func newField(kind Kind, opts []Option) *Field {
	f := &Field{kind: kind, required: true, min: DefaultMin, max: DefaultMax}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// String returns a text field whose Min/Max bound the word count.
func String(opts ...Option) *Field {
	return newField(KindString, opts)
}

// Boolean returns a true/false field.
func Boolean(opts ...Option) *Field {
	f := newField(KindBoolean, opts)
	f.min, f.max = 0, 0
	return f
}

// Number returns a real-valued field in [Min, Max).
func Number(opts ...Option) *Field {
	return newField(KindNumber, opts)
}

// Integer returns an integer field in [ceil(Min), floor(Max)].
func Integer(opts ...Option) *Field {
	return newField(KindInteger, opts)
}

// Array returns a list field of Min..Max elements described by inner.
// Any kind is accepted as the element type.
func Array(inner *Field, opts ...Option) *Field {
	f := newField(KindArray, opts)
	f.inner = inner
	return f
}

// Object returns a single key/value pair field. The key must be one of the
// basic kinds; value may be anything.
func Object(key, value *Field, opts ...Option) (*Field, error) {
	if key == nil || value == nil {
		return nil, fmt.Errorf("object: %w", ErrNilField)
	}
	if !key.kind.IsBasic() {
		return nil, fmt.Errorf("%w, one of %s (got %s)", ErrInvalidKey, joinKinds(BasicKinds()), key.kind)
	}
	f := newField(KindObject, opts)
	f.min, f.max = 0, 0
	f.key = key
	f.value = value
	return f, nil
}

// MustObject is like Object but panics if the key is not a basic kind.
// It is meant for schemas declared as package-level literals.
func MustObject(key, value *Field, opts ...Option) *Field {
	f, err := Object(key, value, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Nested returns a field that generates the whole of s. The schema is
// referenced, not copied.
func Nested(s *Schema, opts ...Option) *Field {
	f := newField(KindNested, opts)
	f.min, f.max = 0, 0
	f.schema = s
	return f
}

// Kind returns the field's type tag.
func (f *Field) Kind() Kind { return f.kind }

// IsRequired reports whether the field is kept when optional fields are excluded.
func (f *Field) IsRequired() bool { return f.required }

// Min returns the lower bound.
func (f *Field) Min() float64 { return f.min }

// Max returns the upper bound.
func (f *Field) Max() float64 { return f.max }

// Inner returns the element field of an array.
func (f *Field) Inner() *Field { return f.inner }

// Key returns the key field of an object.
func (f *Field) Key() *Field { return f.key }

// Value returns the value field of an object.
func (f *Field) Value() *Field { return f.value }

// Schema returns the schema of a nested field.
func (f *Field) Schema() *Schema { return f.schema }
