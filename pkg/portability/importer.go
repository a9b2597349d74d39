package portability

import (
	"fmt"

	"github.com/getmockd/shapemock/pkg/config"
)

// Importer converts a source description into a schema document.
type Importer interface {
	// Import parses data in the importer's format.
	Import(data []byte) (*ImportResult, error)

	// Format returns the format this importer handles.
	Format() Format
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	// Document is the imported schema document.
	Document *config.Document

	// Warnings are non-fatal issues encountered during import.
	Warnings []string
}

func (r *ImportResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ImportError is returned when a source cannot be imported at all.
type ImportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s import: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s import: %s", e.Format, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
