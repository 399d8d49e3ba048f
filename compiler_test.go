package jsonschema

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, data string) *Schema {
	t.Helper()
	schema, err := GetSchema([]byte(data))
	require.NoError(t, err, "failed to compile %s", data)
	return schema
}

func TestCompileSharedDefinitions(t *testing.T) {
	schema := mustCompile(t, `{
		"type": "object",
		"definitions": {"name": {"type": "string", "minLength": 1}},
		"properties": {
			"first": {"$ref": "#/definitions/name"},
			"last": {"$ref": "#/definitions/name"}
		}
	}`)

	// Both $ref sites resolve to the same compiled node.
	assert.Same(t, schema.properties["first"], schema.properties["last"])
}

func TestCompilePermittedRecursion(t *testing.T) {
	schema := mustCompile(t, `{
		"definitions": {
			"S": {"anyOf": [
				{"$ref": "#/definitions/A"},
				{"$ref": "#/definitions/S"},
				{"$ref": "#/definitions/B"}
			]},
			"A": {"enum": ["a"]},
			"B": {"enum": ["b"]}
		},
		"$ref": "#/definitions/S"
	}`)

	assert.True(t, schema.Validate("a").IsValid())
	assert.True(t, schema.Validate("b").IsValid())
	assert.False(t, schema.Validate("c").IsValid())
}

func TestCompileRecursiveTree(t *testing.T) {
	schema := mustCompile(t, `{
		"type": "object",
		"required": ["value"],
		"properties": {
			"value": {"type": "integer"},
			"children": {"type": "array", "items": {"$ref": "#"}}
		},
		"additionalProperties": false
	}`)

	valid := map[string]interface{}{
		"value": 1,
		"children": []interface{}{
			map[string]interface{}{"value": 2},
			map[string]interface{}{"value": 3, "children": []interface{}{}},
		},
	}
	assert.True(t, schema.Validate(valid).IsValid())

	invalid := map[string]interface{}{
		"value": 1,
		"children": []interface{}{
			map[string]interface{}{"value": "x"},
		},
	}
	response := schema.Validate(invalid)
	require.False(t, response.IsValid())
	assert.Equal(t, []string{"children", "0", "value"}, response.InstancePointer.Tokens())
}

func TestCompileNonObjectSchema(t *testing.T) {
	_, err := GetSchema([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestCompileMalformedJSON(t *testing.T) {
	_, err := GetSchema([]byte(`{`))
	assert.ErrorIs(t, err, ErrMalformedSchema)
}

func TestGetSchemaFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "integer", "minimum": 3}`), 0o600))

	schema, err := GetSchemaFromFile(path)
	require.NoError(t, err)

	assert.True(t, schema.Validate(3).IsValid())
	assert.False(t, schema.Validate(2).IsValid())
}

func TestGetSchemaFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	content := "type: object\nrequired:\n  - id\nproperties:\n  id:\n    type: string\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	schema, err := GetSchemaFromFile(path)
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]interface{}{"id": "a"}).IsValid())
	assert.False(t, schema.Validate(map[string]interface{}{}).IsValid())
}

func TestGetSchemaFromFileMissing(t *testing.T) {
	_, err := GetSchemaFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrMalformedSchema)
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestGetSchemaFromFileRef(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	require.NoError(t, os.WriteFile(base, []byte(`{"type": "string"}`), 0o600))

	schemaJSON := fmt.Sprintf(`{"properties": {"name": {"$ref": %q}}}`, base)
	schema := mustCompile(t, schemaJSON)

	assert.True(t, schema.Validate(map[string]interface{}{"name": "x"}).IsValid())
	assert.False(t, schema.Validate(map[string]interface{}{"name": 1}).IsValid())
}

func TestGetSchemaFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"definitions": {"positive": {"type": "integer", "minimum": 1}},
			"type": "array",
			"items": {"$ref": "#/definitions/positive"}
		}`)
	}))
	defer server.Close()

	schema, err := GetSchemaFromURL(server.URL + "/schema.json")
	require.NoError(t, err)

	assert.True(t, schema.Validate([]interface{}{1, 2}).IsValid())
	assert.False(t, schema.Validate([]interface{}{0}).IsValid())
}

func TestGetSchemaFromURLFragment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"definitions": {"name": {"type": "string", "minLength": 2}},
			"type": "object"
		}`)
	}))
	defer server.Close()

	schema, err := GetSchemaFromURL(server.URL + "/schema.json#/definitions/name")
	require.NoError(t, err)

	assert.True(t, schema.Validate("ab").IsValid())
	assert.False(t, schema.Validate("a").IsValid())
	assert.False(t, schema.Validate(5).IsValid())
}

func TestGetSchemaFromURLNonPointerFragment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"type": "boolean"}`)
	}))
	defer server.Close()

	// A fragment that is not a JSON Pointer falls back to the document root.
	schema, err := GetSchemaFromURL(server.URL + "/schema.json#anchor")
	require.NoError(t, err)

	assert.True(t, schema.Validate(true).IsValid())
	assert.False(t, schema.Validate("true").IsValid())
}

func TestGetSchemaFromURLStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := GetSchemaFromURL(server.URL + "/missing.json")
	assert.ErrorIs(t, err, ErrMalformedSchema)
	assert.ErrorIs(t, err, ErrInvalidStatusCode)
}

func TestGetSchemaFromURLUnknownScheme(t *testing.T) {
	_, err := GetSchemaFromURL("gopher://example.com/schema.json")
	assert.ErrorIs(t, err, ErrNoLoaderRegistered)
}

func TestRemoteRefFetchedOncePerOrigin(t *testing.T) {
	var fetches int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		fmt.Fprint(w, `{"type": "integer"}`)
	}))
	defer server.Close()

	schemaJSON := fmt.Sprintf(`{"properties": {
		"a": {"$ref": "%[1]s/int.json"},
		"b": {"$ref": "%[1]s/int.json"}
	}}`, server.URL)

	compiler := NewCompiler()
	schema, err := compiler.GetSchema([]byte(schemaJSON))
	require.NoError(t, err)

	assert.Equal(t, 1, fetches, "the raw document is cached by origin")
	assert.True(t, schema.Validate(map[string]interface{}{"a": 1, "b": 2}).IsValid())
	assert.False(t, schema.Validate(map[string]interface{}{"a": "x"}).IsValid())
}

func TestRemovedLoaderIsNotRegistered(t *testing.T) {
	compiler := NewCompiler()
	delete(compiler.Loaders, "http")

	_, err := compiler.GetSchemaFromURL("http://example.invalid/schema.json")
	assert.ErrorIs(t, err, ErrNoLoaderRegistered)
}

func TestConcurrentValidation(t *testing.T) {
	schema := mustCompile(t, `{
		"type": "object",
		"properties": {"n": {"type": "integer", "multipleOf": 3}},
		"required": ["n"]
	}`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instance := map[string]interface{}{"n": i * 3}
			assert.True(t, schema.Validate(instance).IsValid())
		}(i)
	}
	wg.Wait()
}
