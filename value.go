package jsonschema

import (
	"strings"

	"github.com/goccy/go-json"
)

// JSON type names as used by the "type" keyword.
const (
	typeObject  = "object"
	typeArray   = "array"
	typeString  = "string"
	typeNumber  = "number"
	typeInteger = "integer"
	typeBoolean = "boolean"
	typeNull    = "null"
)

// jsonTypeOf identifies the draft-04 type of a decoded Go value. Booleans are
// never numeric, and a value is an integer only if its decoded variant is
// whole: json.Number carries integer-ness syntactically, while float64 is
// always "number" even for whole values.
func jsonTypeOf(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return typeNull
	case bool:
		return typeBoolean
	case string:
		return typeString
	case json.Number:
		if isIntegerLiteral(string(v)) {
			return typeInteger
		}
		return typeNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return typeInteger
	case float32, float64:
		return typeNumber
	case []interface{}:
		return typeArray
	case map[string]interface{}:
		return typeObject
	default:
		return ""
	}
}

// isIntegerLiteral reports whether a JSON number literal has no fraction or
// exponent part.
func isIntegerLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}

// deepEqual implements the structural equality used by "enum" and
// "uniqueItems": same JSON type and recursively equal contents. Integers and
// numbers are distinct variants, so 1 and 1.0 are not equal; booleans never
// equal numbers. Object key order is insignificant, array order is not.
func deepEqual(a, b interface{}) bool {
	typeA, typeB := jsonTypeOf(a), jsonTypeOf(b)
	if typeA != typeB {
		return false
	}

	switch typeA {
	case typeNull:
		return true
	case typeBoolean:
		return a.(bool) == b.(bool)
	case typeString:
		return a.(string) == b.(string)
	case typeInteger:
		return intValueOf(a) == intValueOf(b)
	case typeNumber:
		return floatValueOf(a) == floatValueOf(b)
	case typeArray:
		arrayA, arrayB := a.([]interface{}), b.([]interface{})
		if len(arrayA) != len(arrayB) {
			return false
		}
		for i := range arrayA {
			if !deepEqual(arrayA[i], arrayB[i]) {
				return false
			}
		}
		return true
	case typeObject:
		objectA, objectB := a.(map[string]interface{}), b.(map[string]interface{})
		if len(objectA) != len(objectB) {
			return false
		}
		for key, valueA := range objectA {
			valueB, ok := objectB[key]
			if !ok || !deepEqual(valueA, valueB) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// intValueOf converts any integer-tagged value to int64.
func intValueOf(v interface{}) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

// floatValueOf converts any number-tagged value to float64.
func floatValueOf(v interface{}) float64 {
	switch v := v.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

// isZeroNumber reports whether a numeric instance is exactly zero. multipleOf
// skips zero instances as trivially conforming.
func isZeroNumber(v interface{}) bool {
	switch jsonTypeOf(v) {
	case typeInteger:
		return intValueOf(v) == 0
	case typeNumber:
		return floatValueOf(v) == 0
	}
	return false
}
