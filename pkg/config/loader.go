package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Common errors for document loading/saving.
var (
	ErrFileNotFound     = errors.New("schema file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("schema file is empty")
	ErrNoMatches        = errors.New("no schema files matched")
	ErrDuplicateSchema  = errors.New("duplicate schema name")
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml and JSON otherwise.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return FormatYAML
	}
	return FormatJSON
}

// Load reads, validates and decodes a document from path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse validates and decodes a document. Validation failures are
// returned as *ValidationResult.
func Parse(data []byte, format Format) (*Document, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return nil, err
	}

	if result := ValidateTree(tree); !result.IsValid() {
		return nil, result
	}

	// The tree is already plain JSON values, so decoding it again through
	// encoding/json gives identical results for both formats.
	normalized, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// decodeTree decodes data into JSON-compatible values (maps, slices,
// float64, string, bool, nil) regardless of format.
func decodeTree(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		if raw == nil {
			return nil, ErrEmptyFile
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		data = b
	default:
		if !json.Valid(data) {
			return nil, ErrInvalidJSON
		}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return tree, nil
}

// LoadGlob loads every file matching pattern and merges them into one
// document. Files are read in sorted order; a schema name defined in two
// files is an error.
func LoadGlob(pattern string) (*Document, error) {
	matches, err := expandGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(matches)

	merged := NewDocument()
	origin := make(map[string]string)
	for _, path := range matches {
		doc, err := Load(path)
		if err != nil {
			return nil, err
		}
		for _, name := range doc.Names() {
			if prev, ok := origin[name]; ok {
				return nil, fmt.Errorf("%w %q in %s (first defined in %s)", ErrDuplicateSchema, name, path, prev)
			}
			origin[name] = path
			merged.Schemas[name] = doc.Schemas[name]
		}
	}
	return merged, nil
}

// expandGlob uses doublestar when the pattern has **, filepath.Glob otherwise.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}

// Marshal encodes d in the given format.
func Marshal(d *Document, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(d)
	}
	return json.MarshalIndent(d, "", "  ")
}

// SaveToFile writes d to path using an atomic rename. The format follows
// the file extension.
func SaveToFile(path string, d *Document) error {
	if d == nil {
		return errors.New("document cannot be nil")
	}

	data, err := Marshal(d, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
