package jsonschema

// Response is the outcome of validating an instance against a compiled
// schema. Validation never fails exceptionally; an invalid instance is
// reported through the two pointers, one into the instance identifying the
// failing node and one into the schema identifying the failing keyword.
//
// A valid Response carries nil pointers. Responses own their token
// sequences; parents prepend their own path tokens as a failure unwinds.
type Response struct {
	Valid           bool
	InstancePointer *Pointer
	SchemaPointer   *Pointer
}

// newValidResponse reports a conforming instance.
func newValidResponse() *Response {
	return &Response{Valid: true}
}

// newFailure reports a divergence at the given instance and schema tokens,
// both relative to the node that detected it.
func newFailure(instanceTokens, schemaTokens []string) *Response {
	return &Response{
		Valid:           false,
		InstancePointer: NewPointer(instanceTokens...),
		SchemaPointer:   NewPointer(schemaTokens...),
	}
}

// IsValid reports whether the instance conformed.
func (r *Response) IsValid() bool {
	return r.Valid
}

// prepend extends both pointers with the calling node's path tokens and
// returns the response for chaining on the unwind path.
func (r *Response) prepend(instanceTokens, schemaTokens []string) *Response {
	if r.InstancePointer != nil {
		r.InstancePointer.prepend(instanceTokens...)
	}
	if r.SchemaPointer != nil {
		r.SchemaPointer.prepend(schemaTokens...)
	}
	return r
}

func (r *Response) String() string {
	if r.Valid {
		return "Valid JSON!"
	}
	return "Document failed on: " + r.InstancePointer.String() +
		"\nOn Schema: " + r.SchemaPointer.String()
}
