// Package jsonschema implements a JSON Schema Draft 4 validator.
//
// A schema document compiles once — resolving $ref references across local
// pointers, URLs and filesystem paths, rejecting content-free reference
// cycles, and checking the document against the embedded draft-04
// meta-schema — into an immutable Schema. Validating an instance against a
// compiled Schema never fails exceptionally: the Response reports the first
// point of divergence as a pair of JSON Pointers, one into the instance and
// one into the schema, identifying the failing node and the failing keyword.
//
//	schema, err := jsonschema.GetSchema(map[string]interface{}{
//		"type": "integer", "maximum": 10, "exclusiveMaximum": true,
//	})
//	if err != nil {
//		// ErrInvalidSchema or ErrMalformedSchema
//	}
//	response := schema.Validate(10)
//	fmt.Println(response) // Document failed on: ...
//
// Compiled schemas are safe for concurrent use; all I/O happens during
// compilation through the Compiler's pluggable loaders.
package jsonschema
