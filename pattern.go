package jsonschema

// evaluateString applies the string keyword family after the type check:
// minLength, maxLength, pattern. The format keyword is parsed but carries no
// assertion.
func evaluateString(s *Schema, instance interface{}) *Response {
	value, ok := instance.(string)
	if !ok {
		return newTypeFailure()
	}

	if response := evaluateMinLength(s, value); !response.IsValid() {
		return response
	}
	if response := evaluateMaxLength(s, value); !response.IsValid() {
		return response
	}
	return evaluatePattern(s, value)
}

// evaluatePattern checks the pattern keyword with search semantics: the
// regular expression may match anywhere in the string, unanchored. Go's RE2
// stands in for ECMA 262.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.2.3
func evaluatePattern(s *Schema, value string) *Response {
	if s.pattern != nil && !s.pattern.MatchString(value) {
		return newFailure(nil, []string{"pattern"})
	}
	return newValidResponse()
}
