package jsonschema

// evaluateDependencies applies both dependency forms. A property dependency
// requires every listed key once the trigger key is present. A schema
// dependency validates the entire instance against its schema once the
// trigger key is present, which is why it threads the caller's active set:
// the instance does not shrink on that edge.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.5
func evaluateDependencies(s *Schema, object map[string]interface{}, active activeSet) *Response {
	for _, key := range s.dependencyOrder {
		if _, present := object[key]; !present {
			continue
		}

		if required, ok := s.propertyDeps[key]; ok {
			for _, dependentKey := range required {
				if _, present := object[dependentKey]; !present {
					return newFailure([]string{key}, []string{"dependencies", key})
				}
			}
		}

		if dependency, ok := s.schemaDeps[key]; ok {
			if response := dependency.evaluate(object, active); !response.IsValid() {
				return response.prepend([]string{key}, []string{"dependencies", key})
			}
		}
	}
	return newValidResponse()
}
