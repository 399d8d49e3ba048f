package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseValidString(t *testing.T) {
	schema := mustCompile(t, `{"type": "string"}`)

	response := schema.Validate("x")
	assert.True(t, response.IsValid())
	assert.Nil(t, response.InstancePointer)
	assert.Nil(t, response.SchemaPointer)
	assert.Equal(t, "Valid JSON!", response.String())
}

func TestResponseFailureString(t *testing.T) {
	schema := mustCompile(t, `{"properties": {"a": {"type": "string"}}}`)

	response := schema.Validate(map[string]interface{}{"a": 1})
	require.False(t, response.IsValid())
	assert.Equal(t, "Document failed on: /a\nOn Schema: /properties/a/type", response.String())
}

func TestResponsePrependOwnership(t *testing.T) {
	first := newFailure([]string{"x"}, []string{"type"})
	second := newFailure([]string{"x"}, []string{"type"})
	first.prepend([]string{"0"}, []string{"items"})

	// Each response owns its token sequences; prepending one leaves the
	// other untouched.
	assert.Equal(t, []string{"0", "x"}, first.InstancePointer.Tokens())
	assert.Equal(t, []string{"x"}, second.InstancePointer.Tokens())
}
