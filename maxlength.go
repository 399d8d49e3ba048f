package jsonschema

import "unicode/utf8"

// evaluateMaxLength checks the upper bound on the instance's length in
// Unicode code points.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.2.1
func evaluateMaxLength(s *Schema, value string) *Response {
	if s.maxLength != nil && utf8.RuneCountInString(value) > *s.maxLength {
		return newFailure(nil, []string{"maxLength"})
	}
	return newValidResponse()
}
