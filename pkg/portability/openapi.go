package portability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/getmockd/shapemock/pkg/config"
	"github.com/getmockd/shapemock/pkg/schema"
)

const (
	componentRefPrefix = "#/components/schemas/"

	// charsPerWord turns a maxLength in characters into a word budget.
	charsPerWord = 8
)

// OpenAPIImporter imports OpenAPI 3.x documents (JSON or YAML).
type OpenAPIImporter struct{}

// Format returns FormatOpenAPI.
func (i *OpenAPIImporter) Format() Format {
	return FormatOpenAPI
}

// Import parses an OpenAPI document and converts its component schemas.
func (i *OpenAPIImporter) Import(data []byte) (*ImportResult, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, &ImportError{Format: FormatOpenAPI, Message: "failed to parse document", Cause: err}
	}
	return ImportOpenAPI(doc)
}

// LoadOpenAPI loads an OpenAPI document from a file path.
func LoadOpenAPI(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from file %s: %w", path, err)
	}
	return doc, nil
}

// ImportOpenAPIFile loads path and converts it.
func ImportOpenAPIFile(path string) (*ImportResult, error) {
	doc, err := LoadOpenAPI(path)
	if err != nil {
		return nil, &ImportError{Format: FormatOpenAPI, Message: "failed to load document", Cause: err}
	}
	return ImportOpenAPI(doc)
}

// ImportOpenAPI converts the component schemas of doc into a schema document.
func ImportOpenAPI(doc *openapi3.T) (*ImportResult, error) {
	if doc == nil || doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, &ImportError{Format: FormatOpenAPI, Message: "document has no component schemas"}
	}

	c := &openAPIConverter{
		result: &ImportResult{Document: config.NewDocument()},
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			c.result.warnf("component %q has no schema; skipped", name)
			continue
		}
		if !isObject(ref.Value) {
			c.result.warnf("component %q is not an object (type %q); skipped", name, primaryType(ref.Value))
			continue
		}
		if err := c.addSchema(name, ref.Value); err != nil {
			return nil, &ImportError{Format: FormatOpenAPI, Message: fmt.Sprintf("component %q", name), Cause: err}
		}
	}

	if len(c.result.Document.Schemas) == 0 {
		return nil, &ImportError{Format: FormatOpenAPI, Message: "no object schemas to import"}
	}
	return c.result, nil
}

type openAPIConverter struct {
	result *ImportResult
}

func (c *openAPIConverter) addSchema(name string, s *openapi3.Schema) error {
	if _, exists := c.result.Document.Schemas[name]; exists {
		c.result.warnf("schema %q defined twice; the later definition wins", name)
	}

	props, required := collectProperties(s)
	propNames := make([]string, 0, len(props))
	for p := range props {
		propNames = append(propNames, p)
	}
	sort.Strings(propNames)

	def := &config.SchemaDef{
		Description: s.Description,
		Fields:      make([]*config.FieldDef, 0, len(propNames)),
	}
	// Register before converting properties so inline children can see it.
	c.result.Document.Schemas[name] = def

	for _, p := range propNames {
		f, err := c.field(name+"."+p, props[p])
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		f.Name = p
		if !required[p] {
			f.Required = config.Bool(false)
		}
		def.Fields = append(def.Fields, f)
	}
	return nil
}

func (c *openAPIConverter) field(path string, ref *openapi3.SchemaRef) (*config.FieldDef, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("unresolved schema at %s", path)
	}
	s := ref.Value

	if target, ok := strings.CutPrefix(ref.Ref, componentRefPrefix); ok && isObject(s) {
		return &config.FieldDef{Type: string(schema.KindNested), Ref: target}, nil
	}
	if len(s.OneOf) > 0 {
		return c.field(path, s.OneOf[0])
	}
	if len(s.AnyOf) > 0 {
		return c.field(path, s.AnyOf[0])
	}

	switch primaryType(s) {
	case "string":
		f := &config.FieldDef{Type: string(schema.KindString)}
		if s.MaxLength != nil {
			words := max(1, int(*s.MaxLength)/charsPerWord)
			f.Min = config.Float(schema.DefaultMin)
			f.Max = config.Float(float64(words))
		}
		return f, nil
	case "integer", "number":
		kind := schema.KindNumber
		if primaryType(s) == "integer" {
			kind = schema.KindInteger
		}
		f := &config.FieldDef{Type: string(kind)}
		applyBounds(f, s.Min, s.Max)
		return f, nil
	case "boolean":
		return &config.FieldDef{Type: string(schema.KindBoolean)}, nil
	case "array":
		items := s.Items
		if items == nil || items.Value == nil {
			c.result.warnf("%s: array without items; using string elements", path)
			items = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		}
		inner, err := c.field(path+"[]", items)
		if err != nil {
			return nil, err
		}
		f := &config.FieldDef{Type: string(schema.KindArray), Items: inner}
		var lo, hi *float64
		if s.MinItems > 0 {
			lo = config.Float(float64(s.MinItems))
		}
		if s.MaxItems != nil {
			hi = config.Float(float64(*s.MaxItems))
		}
		applyBounds(f, lo, hi)
		return f, nil
	}

	if isObject(s) {
		if err := c.addSchema(path, s); err != nil {
			return nil, err
		}
		return &config.FieldDef{Type: string(schema.KindNested), Ref: path}, nil
	}

	if primaryType(s) == "object" || s.AdditionalProperties.Schema != nil {
		value := &config.FieldDef{Type: string(schema.KindString)}
		if addl := s.AdditionalProperties.Schema; addl != nil {
			v, err := c.field(path+"{}", addl)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &config.FieldDef{
			Type:  string(schema.KindObject),
			Key:   &config.FieldDef{Type: string(schema.KindString), Min: config.Float(1), Max: config.Float(1)},
			Value: value,
		}, nil
	}

	c.result.warnf("%s: unsupported schema type %q; using string", path, primaryType(s))
	return &config.FieldDef{Type: string(schema.KindString)}, nil
}

// applyBounds copies bounds onto f. When only one side is given the other
// is placed the default width away so the range is never empty.
func applyBounds(f *config.FieldDef, lo, hi *float64) {
	const width = schema.DefaultMax - schema.DefaultMin
	switch {
	case lo != nil && hi != nil:
		f.Min, f.Max = config.Float(*lo), config.Float(*hi)
	case lo != nil:
		f.Min, f.Max = config.Float(*lo), config.Float(*lo+width)
	case hi != nil:
		f.Min, f.Max = config.Float(*hi-width), config.Float(*hi)
	}
}

// collectProperties merges s.Properties with those of its allOf parts.
func collectProperties(s *openapi3.Schema) (openapi3.Schemas, map[string]bool) {
	props := make(openapi3.Schemas)
	required := make(map[string]bool)

	var walk func(*openapi3.Schema)
	walk = func(s *openapi3.Schema) {
		for _, part := range s.AllOf {
			if part != nil && part.Value != nil {
				walk(part.Value)
			}
		}
		for name, p := range s.Properties {
			props[name] = p
		}
		for _, name := range s.Required {
			required[name] = true
		}
	}
	walk(s)
	return props, required
}

// isObject reports whether s describes a record with named properties.
func isObject(s *openapi3.Schema) bool {
	if len(s.Properties) > 0 || len(s.AllOf) > 0 {
		return true
	}
	return primaryType(s) == "object" && s.AdditionalProperties.Schema == nil
}

// primaryType returns the first non-null type of s.
func primaryType(s *openapi3.Schema) string {
	for _, t := range s.Type.Slice() {
		if t != "null" {
			return t
		}
	}
	return ""
}
