package jsonschema

// evaluateMaxProperties checks the upper bound on the instance's key count.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.1
func evaluateMaxProperties(s *Schema, object map[string]interface{}) *Response {
	if s.maxProperties != nil && len(object) > *s.maxProperties {
		return newFailure(nil, []string{"maxProperties"})
	}
	return newValidResponse()
}
