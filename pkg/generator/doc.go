// Package generator turns a schema.Schema into a random value tree.
//
// A Generator holds a dispatch table from field kind to randomizer, built
// once at construction. Generate walks the schema in field order, skips
// optional fields when Options.ExcludeOptional is set, and calls the
// randomizer for every remaining field:
//
//   - integer: uniform in [ceil(min), floor(max)], drawn as floor(r*width)+min
//   - number:  uniform in [min, max)
//   - boolean: true with probability 1/2
//   - string:  a word count from the integer randomizer, text from the TextProvider
//   - array:   a length from the integer randomizer, then that many elements;
//     empty when the element field is optional and optional fields are excluded
//   - object:  exactly one generated key mapped to one generated value
//   - nested:  the nested schema, generated with the same options
//
// # Usage
//
//	gen := generator.New(s)
//	value, err := gen.Generate(generator.Options{ExcludeOptional: true})
//
// A Generator keeps no per-call state; Generate may run concurrently on the
// same instance as long as the injected RandomSource and TextProvider are
// safe for concurrent use (the defaults are).
package generator
