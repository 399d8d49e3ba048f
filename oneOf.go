package jsonschema

// evaluateOneOf checks if the instance conforms to exactly one of the
// schemas in the oneOf attribute. According to JSON Schema Draft 4:
//   - The "oneOf" keyword's value must be a non-empty array of valid JSON Schemas.
//   - An instance validates successfully if it validates against exactly one
//     of these schemas; zero and more than one matching schema both fail.
//
// With zero matches the last failing child's report is returned under the
// "oneOf" token and its index; with multiple matches no single child is at
// fault, so the failure points at the "oneOf" keyword itself.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.5.5
func evaluateOneOf(s *Schema, instance interface{}, active activeSet) *Response {
	count := 0
	var lastInvalid *Response
	lastInvalidIndex := -1

	for i, child := range s.oneOf {
		response := child.evaluate(instance, active)
		if response.IsValid() {
			count++
		} else {
			lastInvalid = response
			lastInvalidIndex = i
		}
	}

	switch {
	case count == 1:
		return newValidResponse()
	case count > 1:
		return newFailure(nil, []string{"oneOf"})
	default:
		return lastInvalid.prepend(nil, []string{"oneOf", indexToken(lastInvalidIndex)})
	}
}
