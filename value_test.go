package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestJSONTypeOf(t *testing.T) {
	cases := []struct {
		value    interface{}
		expected string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"s", "string"},
		{5, "integer"},
		{int64(5), "integer"},
		{json.Number("5"), "integer"},
		{json.Number("5.5"), "number"},
		{json.Number("5e2"), "number"},
		{5.5, "number"},
		{5.0, "number"},
		{[]interface{}{1}, "array"},
		{map[string]interface{}{}, "object"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, jsonTypeOf(c.value), "value %#v", c.value)
	}
}

func TestDeepEqualScalars(t *testing.T) {
	assert.True(t, deepEqual(nil, nil))
	assert.True(t, deepEqual("a", "a"))
	assert.True(t, deepEqual(1, json.Number("1")))
	assert.True(t, deepEqual(1.5, json.Number("1.5")))

	// Distinct variants are never equal.
	assert.False(t, deepEqual(1, true), "boolean is not an integer")
	assert.False(t, deepEqual(true, 1))
	assert.False(t, deepEqual(1, 1.0), "integer and number are distinct variants")
	assert.False(t, deepEqual(0, false))
	assert.False(t, deepEqual("1", 1))
}

func TestDeepEqualComposite(t *testing.T) {
	a := map[string]interface{}{"x": []interface{}{1, "y"}, "z": nil}
	b := map[string]interface{}{"z": nil, "x": []interface{}{1, "y"}}
	assert.True(t, deepEqual(a, b), "object key order is insignificant")

	assert.False(t, deepEqual([]interface{}{1, 2}, []interface{}{2, 1}), "array order is significant")
	assert.False(t, deepEqual(a, map[string]interface{}{"x": []interface{}{1, "y"}}))
}
