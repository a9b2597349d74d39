package portability

import (
	"bytes"
	"errors"

	"github.com/getmockd/shapemock/pkg/config"
)

// NativeImporter reads shapemock's own schema documents. Importing a native
// document validates it and checks that its references resolve, which makes
// it the way to convert between the JSON and YAML forms.
type NativeImporter struct{}

// Format returns FormatShapemock.
func (i *NativeImporter) Format() Format {
	return FormatShapemock
}

// Import parses a YAML or JSON schema document.
func (i *NativeImporter) Import(data []byte) (*ImportResult, error) {
	format := config.FormatYAML
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		format = config.FormatJSON
	}

	doc, err := config.Parse(data, format)
	if err != nil {
		var vr *config.ValidationResult
		if errors.As(err, &vr) {
			return nil, &ImportError{Format: FormatShapemock, Message: "validation failed", Cause: err}
		}
		return nil, &ImportError{Format: FormatShapemock, Message: "failed to parse document", Cause: err}
	}
	if _, err := doc.Build(); err != nil {
		return nil, &ImportError{Format: FormatShapemock, Message: "invalid references", Cause: err}
	}
	return &ImportResult{Document: doc}, nil
}
