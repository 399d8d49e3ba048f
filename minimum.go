package jsonschema

// evaluateMinimum checks the inclusive lower bound, tightened to exclusive
// when exclusiveMinimum is true. An instance equal to the bound under the
// exclusive form is reported under the "exclusiveMinimum" token; an instance
// below the bound under the "minimum" token.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.1.3
func evaluateMinimum(s *Schema, value *Rat) *Response {
	if s.minimum == nil {
		return newValidResponse()
	}

	comparison := value.Cmp(s.minimum.Rat)
	if comparison < 0 {
		return newFailure(nil, []string{"minimum"})
	}
	if comparison == 0 && s.exclusiveMinimum {
		return newFailure(nil, []string{"exclusiveMinimum"})
	}
	return newValidResponse()
}
