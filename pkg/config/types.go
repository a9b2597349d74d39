package config

import (
	"sort"
)

// DocumentVersion is the only supported document version.
const DocumentVersion = "1"

// Document is a decoded schema definition file.
type Document struct {
	Version string                `json:"version" yaml:"version"`
	Schemas map[string]*SchemaDef `json:"schemas" yaml:"schemas"`
}

// SchemaDef lists the fields of one named schema in generation order.
type SchemaDef struct {
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []*FieldDef `json:"fields" yaml:"fields"`
}

// FieldDef describes one field. Name is set for schema fields and left
// empty for items, key and value.
type FieldDef struct {
	Name        string    `json:"name,omitempty" yaml:"name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string    `json:"type" yaml:"type"`
	Required    *bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Items       *FieldDef `json:"items,omitempty" yaml:"items,omitempty"`
	Key         *FieldDef `json:"key,omitempty" yaml:"key,omitempty"`
	Value       *FieldDef `json:"value,omitempty" yaml:"value,omitempty"`
	Ref         string    `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// NewDocument returns an empty document at the current version.
func NewDocument() *Document {
	return &Document{
		Version: DocumentVersion,
		Schemas: make(map[string]*SchemaDef),
	}
}

// Names returns the schema names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Schemas))
	for name := range d.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRequired reports the field's required flag, defaulting to true.
func (f *FieldDef) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// Bool returns a pointer to b, for building FieldDefs in code.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f, for building FieldDefs in code.
func Float(f float64) *float64 {
	return &f
}
