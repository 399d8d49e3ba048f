package jsonschema

import (
	"sort"

	"github.com/goccy/go-json"
)

// sortedKeys returns a map's keys in lexical order. Decoded objects do not
// preserve document order, so compiled schemas iterate keys in a stable
// order instead to keep failure reporting deterministic.
func sortedKeys(object map[string]interface{}) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// toStringSlice narrows a decoded JSON array to its string elements.
func toStringSlice(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func containsString(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}

// intKeyword reads a numeric keyword as *int, tolerating the integer-valued
// float and json.Number forms JSON decoding produces.
func intKeyword(object map[string]interface{}, keyword string) *int {
	raw, present := object[keyword]
	if !present {
		return nil
	}
	value, ok := intFromValue(raw)
	if !ok {
		return nil
	}
	return &value
}

// intFromValue converts any decoded numeric value to int.
func intFromValue(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
