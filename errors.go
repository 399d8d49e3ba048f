package jsonschema

import "errors"

// === Schema Compilation Errors ===
var (
	// ErrMalformedSchema is returned when a schema document is structurally
	// broken before keyword semantics even apply: a content-free $ref cycle,
	// an unresolvable reference, a broken JSON Pointer, or an I/O or parse
	// failure while fetching a referenced document.
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrInvalidSchema is returned when a schema document fails validation
	// against the draft-04 meta-schema.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrCircularReference is returned when the $ref graph returns to a node
	// already on the current resolution chain without concrete content in
	// between.
	ErrCircularReference = errors.New("circular reference without concrete content")

	// ErrReferenceResolution is returned when a $ref cannot be resolved to a
	// schema node.
	ErrReferenceResolution = errors.New("reference resolution failed")
)

// === Network and IO Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")

	// ErrFileRead is returned when a schema file cannot be read.
	ErrFileRead = errors.New("file read failed")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")

	// ErrNoMediaTypeHandler is returned when a document's media type has no
	// registered unmarshal function.
	ErrNoMediaTypeHandler = errors.New("no handler registered for media type")
)

// === JSON Pointer Errors ===
var (
	// ErrJSONPointerSegmentDecode is returned when a pointer segment cannot be percent-decoded.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerIndexParse is returned when a pointer token addressing an
	// array is not a non-negative decimal index.
	ErrJSONPointerIndexParse = errors.New("json pointer index parse failed")

	// ErrJSONPointerNotFound is returned when a pointer token addresses a
	// missing key or an out-of-range index.
	ErrJSONPointerNotFound = errors.New("json pointer target not found")
)

// === Numeric Errors ===
var (
	// ErrUnsupportedTypeForRat is returned when a value cannot be converted to a rational number.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for rational conversion")
)
