package schema

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a field.
type Kind string

// Field kinds. The set is closed: the constructors in this package are the
// only way to produce a *Field, and each emits one of these.
const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNested  Kind = "nested"
)

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindString, KindBoolean, KindNumber, KindInteger, KindArray, KindObject, KindNested}
}

// BasicKinds returns the kinds allowed as object keys.
func BasicKinds() []Kind {
	return []Kind{KindString, KindBoolean, KindNumber, KindInteger}
}

// IsBasic reports whether k is one of string, boolean, number or integer.
func (k Kind) IsBasic() bool {
	switch k {
	case KindString, KindBoolean, KindNumber, KindInteger:
		return true
	default:
		return false
	}
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindBoolean, KindNumber, KindInteger, KindArray, KindObject, KindNested:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a kind tag. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}
