package jsonschema

// evaluateMaximum checks the inclusive upper bound, tightened to exclusive
// when exclusiveMaximum is true. An instance equal to the bound under the
// exclusive form is reported under the "exclusiveMaximum" token; an instance
// above the bound under the "maximum" token.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.1.2
func evaluateMaximum(s *Schema, value *Rat) *Response {
	if s.maximum == nil {
		return newValidResponse()
	}

	comparison := value.Cmp(s.maximum.Rat)
	if comparison > 0 {
		return newFailure(nil, []string{"maximum"})
	}
	if comparison == 0 && s.exclusiveMaximum {
		return newFailure(nil, []string{"exclusiveMaximum"})
	}
	return newValidResponse()
}
