package jsonschema

// evaluateUniqueItems checks that no two elements are structurally equal
// when uniqueItems is true. Equality follows the variant discipline, so 1
// and true are distinct, as are 1 and 1.0. The reported index is the second
// occurrence of the first duplicated value.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.3.4
func evaluateUniqueItems(s *Schema, array []interface{}) *Response {
	if !s.uniqueItems {
		return newValidResponse()
	}

	for i := 0; i < len(array); i++ {
		for j := i + 1; j < len(array); j++ {
			if deepEqual(array[i], array[j]) {
				return newFailure([]string{indexToken(j)}, []string{"uniqueItems"})
			}
		}
	}
	return newValidResponse()
}
