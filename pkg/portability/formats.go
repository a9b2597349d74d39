package portability

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a supported import format.
type Format string

// Supported import formats.
const (
	FormatUnknown   Format = ""
	FormatShapemock Format = "shapemock" // Native schema documents (YAML/JSON)
	FormatOpenAPI   Format = "openapi"   // OpenAPI 3.x
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a user-supplied name to a Format. Unknown names
// yield FormatUnknown.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shapemock", "native":
		return FormatShapemock
	case "openapi", "oas", "oas3":
		return FormatOpenAPI
	default:
		return FormatUnknown
	}
}

// DetectFormat guesses the format from file content, using the filename
// extension only to choose between JSON and YAML decoding.
func DetectFormat(data []byte, filename string) Format {
	var top map[string]any

	ext := strings.ToLower(filepath.Ext(filename))
	trimmed := bytes.TrimSpace(data)
	if ext == ".json" || (ext != ".yaml" && ext != ".yml" && len(trimmed) > 0 && trimmed[0] == '{') {
		if err := json.Unmarshal(trimmed, &top); err != nil {
			return FormatUnknown
		}
	} else if err := yaml.Unmarshal(trimmed, &top); err != nil {
		return FormatUnknown
	}

	if _, ok := top["openapi"]; ok {
		return FormatOpenAPI
	}
	_, hasVersion := top["version"]
	_, hasSchemas := top["schemas"]
	if hasVersion && hasSchemas {
		return FormatShapemock
	}
	return FormatUnknown
}
