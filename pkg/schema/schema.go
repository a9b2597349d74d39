package schema

import (
	"fmt"
	"iter"
	"sort"
)

// Entry is one named field of a Schema.
type Entry struct {
	Name  string
	Field *Field
}

// Named pairs a field with its name.
func Named(name string, f *Field) Entry {
	return Entry{Name: name, Field: f}
}

// Schema is an ordered, immutable mapping of field name to field.
type Schema struct {
	entries []Entry
	index   map[string]int
}

// New builds a schema from entries, keeping their order.
// Names must be non-empty and unique and every field must be non-nil.
func New(entries ...Entry) (*Schema, error) {
	s := &Schema{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, ErrEmptyName
		}
		if e.Field == nil {
			return nil, fmt.Errorf("%s: %w", e.Name, ErrNilField)
		}
		if _, dup := s.index[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, e.Name)
		}
		s.index[e.Name] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(entries ...Entry) *Schema {
	s, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromMap builds a schema from a plain map. Go maps are unordered, so
// fields are ordered by name.
func FromMap(fields map[string]*Field) (*Schema, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name, Field: fields[name]}
	}
	return New(entries...)
}

// Fields returns the schema's entries in order. The slice is a copy; the
// fields it points to are shared and must not be modified.
func (s *Schema) Fields() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// All yields each field name and descriptor in order without copying.
func (s *Schema) All() iter.Seq2[string, *Field] {
	return func(yield func(string, *Field) bool) {
		for _, e := range s.entries {
			if !yield(e.Name, e.Field) {
				return
			}
		}
	}
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.entries)
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the field registered under name.
func (s *Schema) Get(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Field, true
}
