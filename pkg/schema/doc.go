// Package schema declares the shape of mock data.
//
// A Schema is an ordered set of named fields. Each field is a *Field built by
// one of the constructors below; fields never change after construction, so
// a Schema can be shared between parents and read by many generators at once.
//
// # Field kinds
//
//   - String(...)  - filler text, Min/Max is a word-count range
//   - Boolean(...) - true or false
//   - Number(...)  - real in [Min, Max)
//   - Integer(...) - integer in [ceil(Min), floor(Max)]
//   - Array(inner, ...)  - Min..Max elements of the inner field
//   - Object(key, value, ...) - a single key/value pair; key must be a basic kind
//   - Nested(schema, ...) - another Schema, shared by reference
//
// Every constructor defaults to required=true, Min=1, Max=9.
//
// # Usage
//
//	user := schema.MustNew(
//	    schema.Named("first_name", schema.String()),
//	    schema.Named("code", schema.Array(schema.Integer(schema.Optional()))),
//	)
//
//	res := schema.MustNew(
//	    schema.Named("mapping", schema.MustObject(schema.String(schema.Range(1, 1)), schema.Boolean())),
//	    schema.Named("status", schema.Integer()),
//	    schema.Named("data", schema.Array(schema.Nested(user))),
//	)
package schema
