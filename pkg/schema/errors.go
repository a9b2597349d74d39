package schema

import "errors"

// Construction errors. A schema that fails any of these checks is never
// returned to the caller.
var (
	ErrInvalidKey     = errors.New("object key must be a basic type")
	ErrUnknownKind    = errors.New("unknown field kind")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrNilField       = errors.New("field cannot be nil")
	ErrEmptyName      = errors.New("field name cannot be empty")
)
