package jsonschema

// evaluateMinProperties checks the lower bound on the instance's key count.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.2
func evaluateMinProperties(s *Schema, object map[string]interface{}) *Response {
	if s.minProperties != nil && len(object) < *s.minProperties {
		return newFailure(nil, []string{"minProperties"})
	}
	return newValidResponse()
}
