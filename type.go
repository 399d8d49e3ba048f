package jsonschema

// evaluateMulti dispatches an instance to the compiled sub-node for its JSON
// type. The dispatch rules for numbers mirror draft-04 type semantics: an
// integer instance prefers the "integer" sub-node and falls back to
// "number"; a non-integer number prefers "number" and otherwise lands on
// "integer", whose type check then rejects it. Booleans are never dispatched
// to numeric sub-nodes, and null instances are decided by the presence of
// the "null" sub-node alone.
//
// When no sub-node covers the instance's type, an untyped schema (one whose
// accepted-type set was inferred rather than declared) accepts the instance;
// a declared type list rejects it with the "type" token.
func evaluateMulti(s *Schema, instance interface{}, active activeSet) *Response {
	dispatch := func(typeName string) *Response {
		if variant, ok := s.variants[typeName]; ok {
			return variant.evaluate(instance, active)
		}
		if s.acceptsAny {
			return newValidResponse()
		}
		return newTypeFailure()
	}

	switch jsonTypeOf(instance) {
	case typeInteger:
		if _, ok := s.variants[typeInteger]; ok {
			return dispatch(typeInteger)
		}
		return dispatch(typeNumber)
	case typeNumber:
		if _, ok := s.variants[typeNumber]; ok {
			return dispatch(typeNumber)
		}
		return dispatch(typeInteger)
	case typeBoolean:
		return dispatch(typeBoolean)
	case typeString:
		return dispatch(typeString)
	case typeObject:
		return dispatch(typeObject)
	case typeArray:
		return dispatch(typeArray)
	default:
		return dispatch(typeNull)
	}
}
