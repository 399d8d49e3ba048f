package jsonschema

// evaluateObject applies the object keyword family in its fixed order after
// the type check: required, properties, the property-count bounds,
// dependencies, additionalProperties, patternProperties. The first failing
// keyword wins and its report is extended with this node's path tokens on
// the way up.
func evaluateObject(s *Schema, instance interface{}, active activeSet) *Response {
	object, ok := instance.(map[string]interface{})
	if !ok {
		return newTypeFailure()
	}

	if response := evaluateRequired(s, object); !response.IsValid() {
		return response
	}
	if response := evaluateProperties(s, object); !response.IsValid() {
		return response
	}
	if response := evaluateMinProperties(s, object); !response.IsValid() {
		return response
	}
	if response := evaluateMaxProperties(s, object); !response.IsValid() {
		return response
	}
	if response := evaluateDependencies(s, object, active); !response.IsValid() {
		return response
	}
	if response := evaluateAdditionalProperties(s, object); !response.IsValid() {
		return response
	}
	if response := evaluatePatternProperties(s, object); !response.IsValid() {
		return response
	}
	return newValidResponse()
}

// evaluateProperties validates each present key with a schema in
// "properties" against it. Failure pointers gain the key on the instance
// side and ["properties", key] on the schema side.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.4.4
func evaluateProperties(s *Schema, object map[string]interface{}) *Response {
	for _, key := range s.propertyOrder {
		value, present := object[key]
		if !present {
			continue
		}
		if response := s.properties[key].evaluateChild(value); !response.IsValid() {
			return response.prepend([]string{key}, []string{"properties", key})
		}
	}
	return newValidResponse()
}

// isAdditionalProperty reports whether a key falls outside "properties",
// "required" and every patternProperties pattern, leaving it governed by
// additionalProperties.
func (s *Schema) isAdditionalProperty(key string) bool {
	if _, ok := s.properties[key]; ok {
		return false
	}
	if containsString(s.required, key) {
		return false
	}
	return !s.isPatternProperty(key)
}

// isPatternProperty reports whether any patternProperties pattern matches
// the key. Matching uses search semantics: the pattern may match at any
// position in the key.
func (s *Schema) isPatternProperty(key string) bool {
	for _, entry := range s.patternProperties {
		if entry.regex.MatchString(key) {
			return true
		}
	}
	return false
}
