package jsonschema

import "math/big"

// evaluateMultipleOf checks that the instance divided by the divisor is an
// integer, using exact rational arithmetic: floating-point division is
// ambiguous on large values. A zero instance is trivially conforming and is
// skipped.
//
// Reference: https://tools.ietf.org/html/draft-fge-json-schema-validation-00#section-5.1.1
func evaluateMultipleOf(s *Schema, value *Rat, instance interface{}) *Response {
	if s.multipleOf == nil || isZeroNumber(instance) {
		return newValidResponse()
	}

	quotient := new(big.Rat).Quo(value.Rat, s.multipleOf.Rat)
	if !quotient.IsInt() {
		return newFailure(nil, []string{"multipleOf"})
	}
	return newValidResponse()
}
