package jsonschema

// evaluateMaxItems checks the upper bound on the instance's length.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.3.2
func evaluateMaxItems(s *Schema, array []interface{}) *Response {
	if s.maxItems != nil && len(array) > *s.maxItems {
		return newFailure(nil, []string{"maxItems"})
	}
	return newValidResponse()
}
