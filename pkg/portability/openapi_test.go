package portability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/shapemock/internal/ordered"
	"github.com/getmockd/shapemock/pkg/config"
	"github.com/getmockd/shapemock/pkg/generator"
	"github.com/getmockd/shapemock/pkg/schema"
)

const petstore = `
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: integer
          minimum: 1
          maximum: 1000
        name:
          type: string
          maxLength: 24
        weight:
          type: number
          minimum: 0.5
        vaccinated:
          type: boolean
        tags:
          type: array
          minItems: 1
          maxItems: 3
          items:
            type: string
        owner:
          $ref: '#/components/schemas/Owner'
        collar:
          type: object
          properties:
            color:
              type: string
        attributes:
          type: object
          additionalProperties:
            type: integer
    Owner:
      type: object
      required: [email]
      properties:
        email:
          type: string
    Status:
      type: string
      enum: [available, sold]
    Dog:
      allOf:
        - $ref: '#/components/schemas/Pet'
        - type: object
          required: [breed]
          properties:
            breed:
              type: string
`

func importPetstore(t *testing.T) *ImportResult {
	t.Helper()
	imp := &OpenAPIImporter{}
	assert.Equal(t, FormatOpenAPI, imp.Format())

	result, err := imp.Import([]byte(petstore))
	require.NoError(t, err)
	return result
}

func TestOpenAPI_Components(t *testing.T) {
	result := importPetstore(t)
	doc := result.Document

	assert.Equal(t, []string{"Dog", "Dog.collar", "Owner", "Pet", "Pet.collar"}, doc.Names())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"Status"`)
}

func TestOpenAPI_Fields(t *testing.T) {
	pet := importPetstore(t).Document.Schemas["Pet"]
	byName := map[string]int{}
	for i, f := range pet.Fields {
		byName[f.Name] = i
	}
	field := func(name string) *config.FieldDef {
		i, ok := byName[name]
		require.True(t, ok, "missing field %s", name)
		return pet.Fields[i]
	}

	id := field("id")
	assert.Equal(t, "integer", id.Type)
	assert.True(t, id.IsRequired())
	assert.Equal(t, 1.0, *id.Min)
	assert.Equal(t, 1000.0, *id.Max)

	name := field("name")
	assert.Equal(t, "string", name.Type)
	assert.Equal(t, 3.0, *name.Max)

	weight := field("weight")
	assert.False(t, weight.IsRequired())
	assert.Equal(t, 0.5, *weight.Min)
	assert.Equal(t, 8.5, *weight.Max)

	tags := field("tags")
	assert.Equal(t, "array", tags.Type)
	assert.Equal(t, "string", tags.Items.Type)
	assert.Equal(t, 1.0, *tags.Min)
	assert.Equal(t, 3.0, *tags.Max)

	owner := field("owner")
	assert.Equal(t, "nested", owner.Type)
	assert.Equal(t, "Owner", owner.Ref)

	collar := field("collar")
	assert.Equal(t, "nested", collar.Type)
	assert.Equal(t, "Pet.collar", collar.Ref)

	attrs := field("attributes")
	assert.Equal(t, "object", attrs.Type)
	assert.Equal(t, "string", attrs.Key.Type)
	assert.Equal(t, "integer", attrs.Value.Type)
}

func TestOpenAPI_AllOfMerges(t *testing.T) {
	dog := importPetstore(t).Document.Schemas["Dog"]
	names := make([]string, len(dog.Fields))
	for i, f := range dog.Fields {
		names[i] = f.Name
	}
	assert.Contains(t, names, "breed")
	assert.Contains(t, names, "id")
	assert.Contains(t, names, "owner")
}

func TestOpenAPI_BuildsAndGenerates(t *testing.T) {
	set, err := importPetstore(t).Document.Build()
	require.NoError(t, err)

	pet, ok := set.Get("Pet")
	require.True(t, ok)
	owner, _ := set.Get("Owner")
	ownerField, _ := pet.Get("owner")
	assert.Same(t, owner, ownerField.Schema())

	v, err := generator.New(pet).Generate(generator.Options{ExcludeOptional: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"id", "name"}, v.Keys())

	v, err = generator.New(pet).Generate(generator.Options{})
	require.NoError(t, err)
	attrs, _ := v.Get("attributes")
	require.IsType(t, &ordered.Map{}, attrs)
	assert.Equal(t, 1, attrs.(*ordered.Map).Len())

	f, _ := pet.Get("attributes")
	assert.Equal(t, schema.KindObject, f.Kind())
}

func TestOpenAPI_Errors(t *testing.T) {
	imp := &OpenAPIImporter{}

	_, err := imp.Import([]byte("not: [valid"))
	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, FormatOpenAPI, ie.Format)

	_, err = imp.Import([]byte("openapi: 3.0.3\ninfo: {title: x, version: '1'}\npaths: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no component schemas")

	_, err = ImportOpenAPI(nil)
	assert.Error(t, err)
}

func TestImportOpenAPIFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstore), 0644))

	result, err := ImportOpenAPIFile(path)
	require.NoError(t, err)
	assert.Contains(t, result.Document.Names(), "Pet")

	_, err = ImportOpenAPIFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
