package jsonschema

// evaluateEnum checks if the instance is structurally equal to one of the
// listed values. Equality follows the variant discipline: booleans never
// equal numbers and 1 never equals 1.0.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.5.1
func evaluateEnum(s *Schema, instance interface{}) *Response {
	for _, value := range s.enum {
		if deepEqual(instance, value) {
			return newValidResponse()
		}
	}
	return newFailure(nil, []string{"enum"})
}
