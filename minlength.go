package jsonschema

import "unicode/utf8"

// evaluateMinLength checks the lower bound on the instance's length in
// Unicode code points.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.2.2
func evaluateMinLength(s *Schema, value string) *Response {
	if s.minLength != nil && utf8.RuneCountInString(value) < *s.minLength {
		return newFailure(nil, []string{"minLength"})
	}
	return newValidResponse()
}
