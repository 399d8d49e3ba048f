package jsonschema

// evaluateNot checks that the instance fails to conform to the schema in the
// not attribute. An instance the child accepts fails with the "not" token.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.5.6
func evaluateNot(s *Schema, instance interface{}, active activeSet) *Response {
	if s.not.evaluate(instance, active).IsValid() {
		return newFailure(nil, []string{"not"})
	}
	return newValidResponse()
}
