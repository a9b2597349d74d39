// Package portability converts external API descriptions into shapemock
// schema documents.
//
// Importers are looked up by Format in a registry. ImportFile detects the
// format from content when none is given: a top-level "openapi" key means
// OpenAPI, "version" plus "schemas" means a native document.
//
// OpenAPI 3.x component schemas are mapped to named schemas:
//
//   - object properties become fields; the "required" list sets each
//     field's required flag
//   - $ref to another component becomes a nested field referencing it
//   - inline objects become their own schema named "<parent>.<property>"
//   - arrays keep minItems/maxItems as length bounds
//   - objects with additionalProperties become object fields with a
//     string key
//   - minimum/maximum carry over to number and integer fields
//   - oneOf/anyOf take their first variant; allOf merges properties
//
// Components that are not objects cannot be generated on their own and are
// reported as warnings.
package portability
