package jsonschema

// evaluateAdditionalProperties governs keys outside "properties",
// "required" and every patternProperties pattern. With the false form no
// such key may exist; with the schema form each one's value must validate
// against it.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.4
func evaluateAdditionalProperties(s *Schema, object map[string]interface{}) *Response {
	if s.additionalOff {
		for _, key := range sortedKeys(object) {
			if s.isAdditionalProperty(key) {
				return newFailure([]string{key}, []string{"additionalProperties"})
			}
		}
		return newValidResponse()
	}

	if s.additional != nil {
		for _, key := range sortedKeys(object) {
			if !s.isAdditionalProperty(key) {
				continue
			}
			if response := s.additional.evaluateChild(object[key]); !response.IsValid() {
				return response.prepend([]string{key}, []string{"additionalProperties", key})
			}
		}
	}

	return newValidResponse()
}
