package schema

import "github.com/getmockd/shapemock/internal/ordered"

// Summary returns a compact view of the schema for display:
//
//   - basic fields become their kind name ("string", "integer", ...)
//   - arrays become a one-element list holding the element summary
//   - objects become {keyKind: valueSummary}
//   - nested fields become the nested schema's summary
//
// The result marshals to JSON and YAML in field order.
func (s *Schema) Summary() *ordered.Map {
	out := ordered.New(len(s.entries))
	for _, e := range s.entries {
		out.Set(e.Name, summarize(e.Field))
	}
	return out
}

func summarize(f *Field) any {
	if f == nil {
		return nil
	}
	switch f.kind {
	case KindArray:
		return []any{summarize(f.inner)}
	case KindObject:
		m := ordered.New(1)
		m.Set(string(f.key.kind), summarize(f.value))
		return m
	case KindNested:
		if f.schema == nil {
			return nil
		}
		return f.schema.Summary()
	default:
		return string(f.kind)
	}
}
