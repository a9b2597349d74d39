// Package config loads schema definition documents.
//
// A document names a set of schemas and lists the fields of each in order.
// It can be written in YAML or JSON; the format is picked from the file
// extension (.yaml and .yml are YAML, anything else is JSON).
//
//	version: "1"
//	schemas:
//	  user:
//	    fields:
//	      - name: first_name
//	        type: string
//	      - name: code
//	        type: array
//	        items: { type: integer, required: false }
//	  response:
//	    fields:
//	      - name: mapping
//	        type: object
//	        key: { type: string, min: 1, max: 1 }
//	        value: { type: boolean }
//	      - name: data
//	        type: array
//	        items: { type: nested, ref: user }
//
// Loading happens in three steps:
//
//  1. Decode the file into a generic tree and check it against the embedded
//     document JSON Schema, collecting every error with its JSON pointer.
//  2. Decode the same bytes into a Document.
//  3. Build a Set: every named schema becomes one *schema.Schema, and
//     nested fields point at the shared instance for their ref. Unknown
//     refs, reference cycles and non-basic object keys are rejected here.
//
// LoadGlob merges several files matched by a pattern; ** matches any
// number of directories.
package config
