package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	doc, err := Load("testdata/demo.yaml")
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, []string{"response", "user"}, doc.Names())

	user := doc.Schemas["user"]
	require.Len(t, user.Fields, 4)
	assert.Equal(t, "A user record", user.Description)
	assert.Equal(t, "code", user.Fields[3].Name)
	assert.Equal(t, "array", user.Fields[3].Type)
	require.NotNil(t, user.Fields[3].Items)
	assert.False(t, user.Fields[3].Items.IsRequired())

	mapping := doc.Schemas["response"].Fields[0]
	require.NotNil(t, mapping.Key.Min)
	assert.Equal(t, 1.0, *mapping.Key.Min)
}

func TestLoad_JSON(t *testing.T) {
	doc, err := Load("testdata/demo.json")
	require.NoError(t, err)

	item := doc.Schemas["item"]
	require.Len(t, item.Fields, 2)
	assert.True(t, item.Fields[0].IsRequired())
	assert.False(t, item.Fields[1].IsRequired())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":`), 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})
}

func TestParse_ReportsValidationErrors(t *testing.T) {
	data := []byte(`
version: "1"
schemas:
  broken:
    fields:
      - name: when
        type: date
      - name: list
        type: array
`)
	_, err := Parse(data, FormatYAML)
	require.Error(t, err)

	var result *ValidationResult
	require.True(t, errors.As(err, &result))
	assert.False(t, result.IsValid())

	paths := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "/schemas/broken/fields/0/type")
	assert.Contains(t, paths, "/schemas/broken/fields/1")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("a.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("a.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("a"))
}

func TestLoadGlob(t *testing.T) {
	t.Run("recursive", func(t *testing.T) {
		doc, err := LoadGlob("testdata/glob/**/*.{yaml,yml}")
		require.NoError(t, err)
		assert.Equal(t, []string{"address", "person"}, doc.Names())
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := LoadGlob("testdata/none/*.yaml")
		assert.ErrorIs(t, err, ErrNoMatches)
	})

	t.Run("duplicate names", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("version: \"1\"\nschemas:\n  dup:\n    fields:\n      - name: a\n        type: boolean\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"), content, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "two.yaml"), content, 0644))

		_, err := LoadGlob(filepath.Join(dir, "*.yaml"))
		assert.ErrorIs(t, err, ErrDuplicateSchema)
	})
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	doc, err := Load("testdata/demo.yaml")
	require.NoError(t, err)

	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", name)
			require.NoError(t, SaveToFile(path, doc))

			again, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, doc, again)

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))
		})
	}

	assert.Error(t, SaveToFile(filepath.Join(t.TempDir(), "x.yaml"), nil))
}
