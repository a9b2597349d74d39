package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getmockd/shapemock/pkg/schema"
)

// Build errors.
var (
	ErrUnknownRef = errors.New("unknown schema reference")
	ErrRefCycle   = errors.New("schema reference cycle")
)

// Set is the built form of a Document: one shared *schema.Schema per name.
type Set struct {
	names   []string
	schemas map[string]*schema.Schema
}

// Get returns the schema registered under name.
func (s *Set) Get(name string) (*schema.Schema, bool) {
	sch, ok := s.schemas[name]
	return sch, ok
}

// Names returns the schema names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of schemas.
func (s *Set) Len() int {
	return len(s.names)
}

// Build turns the document into schemas. A schema referenced from several
// places is built once and shared.
func (d *Document) Build() (*Set, error) {
	b := &builder{
		doc:      d,
		built:    make(map[string]*schema.Schema, len(d.Schemas)),
		visiting: make(map[string]bool),
	}
	set := &Set{
		names:   d.Names(),
		schemas: b.built,
	}
	for _, name := range set.names {
		if _, err := b.schema(name, nil); err != nil {
			return nil, err
		}
	}
	return set, nil
}

type builder struct {
	doc      *Document
	built    map[string]*schema.Schema
	visiting map[string]bool
}

func (b *builder) schema(name string, chain []string) (*schema.Schema, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}
	def, ok := b.doc.Schemas[name]
	if !ok || def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
	}
	chain = append(chain, name)
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: %s", ErrRefCycle, strings.Join(chain, " -> "))
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	entries := make([]schema.Entry, 0, len(def.Fields))
	for i, fd := range def.Fields {
		if fd == nil {
			return nil, fmt.Errorf("schemas.%s.fields[%d]: %w", name, i, schema.ErrNilField)
		}
		f, err := b.field(fd, chain)
		if err != nil {
			return nil, fmt.Errorf("schemas.%s.%s: %w", name, fd.Name, err)
		}
		entries = append(entries, schema.Named(fd.Name, f))
	}

	s, err := schema.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("schemas.%s: %w", name, err)
	}
	b.built[name] = s
	return s, nil
}

func (b *builder) field(fd *FieldDef, chain []string) (*schema.Field, error) {
	kind, err := schema.ParseKind(fd.Type)
	if err != nil {
		return nil, err
	}

	opts := []schema.Option{schema.Required(fd.IsRequired())}
	if fd.Min != nil || fd.Max != nil {
		lo, hi := float64(schema.DefaultMin), float64(schema.DefaultMax)
		if fd.Min != nil {
			lo = *fd.Min
		}
		if fd.Max != nil {
			hi = *fd.Max
		}
		opts = append(opts, schema.Range(lo, hi))
	}

	switch kind {
	case schema.KindString:
		return schema.String(opts...), nil
	case schema.KindBoolean:
		return schema.Boolean(opts...), nil
	case schema.KindNumber:
		return schema.Number(opts...), nil
	case schema.KindInteger:
		return schema.Integer(opts...), nil
	case schema.KindArray:
		if fd.Items == nil {
			return nil, errors.New("array field requires items")
		}
		inner, err := b.field(fd.Items, chain)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return schema.Array(inner, opts...), nil
	case schema.KindObject:
		if fd.Key == nil || fd.Value == nil {
			return nil, errors.New("object field requires key and value")
		}
		key, err := b.field(fd.Key, chain)
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		value, err := b.field(fd.Value, chain)
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		return schema.Object(key, value, opts...)
	case schema.KindNested:
		if fd.Ref == "" {
			return nil, errors.New("nested field requires ref")
		}
		s, err := b.schema(fd.Ref, chain)
		if err != nil {
			return nil, err
		}
		return schema.Nested(s, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", schema.ErrUnknownKind, fd.Type)
}

// LoadSet loads the document at path and builds it.
func LoadSet(path string) (*Set, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// LoadSetGlob loads every document matching pattern and builds the merged
// result.
func LoadSetGlob(pattern string) (*Set, error) {
	doc, err := LoadGlob(pattern)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
