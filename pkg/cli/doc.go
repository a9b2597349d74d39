// Package cli provides the command-line interface for shapemock.
//
// Commands:
//   - generate: Generate random values for a named schema
//   - summary: Print the shape of one or every schema
//   - validate: Check schema documents without generating anything
//   - import: Convert OpenAPI component schemas (or a native document) into a schema document
//   - serve: Serve generated values over HTTP
//   - version: Show version information
//
// Every command that reads schemas takes --file, which accepts a single
// path or a glob pattern (including ** via doublestar). Generated data is
// written to stdout; logs go to stderr and, with --log-file, to a JSON file.
//
// Usage:
//
//	shapemock generate -f schemas.yaml -s user
//	shapemock generate -f schemas.yaml -s user -n 10 --delay 200ms --select '$[*].email'
//	shapemock summary -f schemas.yaml --yaml
//	shapemock validate -f 'schemas/**/*.yaml'
//	shapemock import petstore.yaml -o schemas.yaml
//	shapemock serve -f schemas.yaml --route "GET /users=user" --route "POST /users=user:201"
package cli
