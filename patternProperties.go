package jsonschema

// evaluatePatternProperties validates the value of every instance key
// matched by a pattern against that pattern's schema. A key matched by
// several patterns must satisfy all of them.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.4
func evaluatePatternProperties(s *Schema, object map[string]interface{}) *Response {
	if len(s.patternProperties) == 0 {
		return newValidResponse()
	}

	for _, key := range sortedKeys(object) {
		for _, entry := range s.patternProperties {
			if !entry.regex.MatchString(key) {
				continue
			}
			if response := entry.schema.evaluateChild(object[key]); !response.IsValid() {
				return response.prepend([]string{key}, []string{"patternProperties", entry.pattern})
			}
		}
	}
	return newValidResponse()
}
