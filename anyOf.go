package jsonschema

// evaluateAnyOf checks if the instance conforms to at least one of the
// schemas in the anyOf attribute. According to JSON Schema Draft 4:
//   - The "anyOf" keyword's value must be a non-empty array of valid JSON Schemas.
//   - An instance validates successfully if it validates against at least one
//     of these schemas.
//
// Every child runs to completion because pass counts matter; on failure the
// last failing child's report is returned under the "anyOf" token and its
// index.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.5.4
func evaluateAnyOf(s *Schema, instance interface{}, active activeSet) *Response {
	count := 0
	var lastInvalid *Response
	lastInvalidIndex := -1

	for i, child := range s.anyOf {
		response := child.evaluate(instance, active)
		if response.IsValid() {
			count++
		} else {
			lastInvalid = response
			lastInvalidIndex = i
		}
	}

	if count >= 1 {
		return newValidResponse()
	}
	return lastInvalid.prepend(nil, []string{"anyOf", indexToken(lastInvalidIndex)})
}
