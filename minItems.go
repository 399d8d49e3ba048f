package jsonschema

// evaluateMinItems checks the lower bound on the instance's length.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.3.3
func evaluateMinItems(s *Schema, array []interface{}) *Response {
	if s.minItems != nil && len(array) < *s.minItems {
		return newFailure(nil, []string{"minItems"})
	}
	return newValidResponse()
}
