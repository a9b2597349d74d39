package portability

import (
	"fmt"
	"os"
	"strings"
)

// ImportFile reads path and imports it with the importer for format. With
// FormatUnknown the format is detected from the content.
func ImportFile(path string, format Format) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == FormatUnknown {
		format = DetectFormat(data, path)
		if format == FormatUnknown {
			return nil, fmt.Errorf("cannot detect the format of %s; pass one of: %s", path, joinFormats(ImportFormats()))
		}
	}

	// OpenAPI files may reference siblings, which only the path-based
	// loader can resolve.
	if format == FormatOpenAPI {
		return ImportOpenAPIFile(path)
	}

	imp := GetImporter(format)
	if imp == nil {
		return nil, fmt.Errorf("unsupported import format %q; supported: %s", format, joinFormats(ImportFormats()))
	}
	return imp.Import(data)
}

func joinFormats(formats []Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
