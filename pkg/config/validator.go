package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchema []byte

const documentSchemaURL = "document.schema.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidationError is a single problem found in a document.
type ValidationError struct {
	Path    string // JSON pointer style, e.g. "/schemas/user/fields/0/type"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult collects every validation error of a document.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns the errors, one per line.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func compileDocumentSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(documentSchemaURL, bytes.NewReader(documentSchema)); err != nil {
			compileErr = fmt.Errorf("failed to add document schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(documentSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateTree checks a generically decoded document (as produced by
// encoding/json into an any) against the document schema.
func ValidateTree(tree any) *ValidationResult {
	result := &ValidationResult{}

	sch, err := compileDocumentSchema()
	if err != nil {
		result.AddError("", fmt.Sprintf("schema compilation error: %v", err))
		return result
	}

	if err := sch.Validate(tree); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			collectCauses(verr, result)
		} else {
			result.AddError("", err.Error())
		}
	}
	return result
}

// collectCauses flattens the error tree down to its leaves.
func collectCauses(err *jsonschema.ValidationError, result *ValidationResult) {
	if len(err.Causes) == 0 {
		result.AddError(err.InstanceLocation, err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, result)
	}
}
