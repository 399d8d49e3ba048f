package jsonschema

// evaluateRequired checks that every listed key exists in the instance.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.3
func evaluateRequired(s *Schema, object map[string]interface{}) *Response {
	for _, key := range s.required {
		if _, present := object[key]; !present {
			return newFailure(nil, []string{"required", key})
		}
	}
	return newValidResponse()
}
