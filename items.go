package jsonschema

// evaluateArray applies the array keyword family in its fixed order after
// the type check: items, additionalItems, the length bounds, uniqueItems.
func evaluateArray(s *Schema, instance interface{}) *Response {
	array, ok := instance.([]interface{})
	if !ok {
		return newTypeFailure()
	}

	if response := evaluateItems(s, array); !response.IsValid() {
		return response
	}
	if response := evaluateAdditionalItems(s, array); !response.IsValid() {
		return response
	}
	if response := evaluateMinItems(s, array); !response.IsValid() {
		return response
	}
	if response := evaluateMaxItems(s, array); !response.IsValid() {
		return response
	}
	return evaluateUniqueItems(s, array)
}

// evaluateItems validates elements against the items keyword. The schema
// form governs every element; the list form governs element i for
// i < min(len(instance), len(items)), leaving the rest to additionalItems.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.3.1
func evaluateItems(s *Schema, array []interface{}) *Response {
	if s.tupleItems != nil {
		bound := minInt(len(array), len(s.tupleItems))
		for i := 0; i < bound; i++ {
			if response := s.tupleItems[i].evaluateChild(array[i]); !response.IsValid() {
				return response.prepend([]string{indexToken(i)}, []string{"items", indexToken(i)})
			}
		}
		return newValidResponse()
	}

	if s.items != nil {
		for i, element := range array {
			if response := s.items.evaluateChild(element); !response.IsValid() {
				return response.prepend([]string{indexToken(i)}, []string{"items"})
			}
		}
	}
	return newValidResponse()
}

// evaluateAdditionalItems governs elements past the items list. It only
// applies when items is a list; the single-schema form already covers every
// element. With the false form no extra element may exist; with the schema
// form each extra element must validate against it.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.3.1
func evaluateAdditionalItems(s *Schema, array []interface{}) *Response {
	if s.tupleItems == nil || len(array) <= len(s.tupleItems) {
		return newValidResponse()
	}

	if s.additionalItemsOff {
		return newFailure([]string{indexToken(len(s.tupleItems))}, []string{"additionalItems"})
	}

	if s.additionalItems != nil {
		for i := len(s.tupleItems); i < len(array); i++ {
			if response := s.additionalItems.evaluateChild(array[i]); !response.IsValid() {
				return response.prepend([]string{indexToken(i)}, []string{"additionalItems"})
			}
		}
	}
	return newValidResponse()
}
