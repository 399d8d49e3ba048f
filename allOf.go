package jsonschema

// evaluateAllOf checks if the instance conforms to every schema in the allOf
// attribute. All children are evaluated even after a failure; the last
// failing child's report is returned under the "allOf" token and its index.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.5.3
func evaluateAllOf(s *Schema, instance interface{}, active activeSet) *Response {
	var lastInvalid *Response
	lastInvalidIndex := -1

	for i, child := range s.allOf {
		response := child.evaluate(instance, active)
		if !response.IsValid() {
			lastInvalid = response
			lastInvalidIndex = i
		}
	}

	if lastInvalid == nil {
		return newValidResponse()
	}
	return lastInvalid.prepend(nil, []string{"allOf", indexToken(lastInvalidIndex)})
}
