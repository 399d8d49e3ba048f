package jsonschema

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed metaschema/draft-04.json
var metaSchemaFS embed.FS

// metaSchemaPath is where the canonical draft-04 meta-schema document is
// packaged.
const metaSchemaPath = "metaschema/draft-04.json"

var (
	metaSchemaOnce     sync.Once
	metaSchemaCompiled *Schema
	metaSchemaErr      error
)

// metaSchema returns the compiled draft-04 meta-schema. The meta-schema
// compiles without invoking the meta-schema check on itself (bootstrap); it
// is compiled once and shared, which is safe because compiled schemas are
// immutable.
func metaSchema() (*Schema, error) {
	metaSchemaOnce.Do(func() {
		data, err := metaSchemaFS.ReadFile(metaSchemaPath)
		if err != nil {
			metaSchemaErr = fmt.Errorf("%w: embedded meta-schema: %w", ErrMalformedSchema, err)
			return
		}
		document, err := decodeJSON(data)
		if err != nil {
			metaSchemaErr = fmt.Errorf("%w: embedded meta-schema: %w", ErrMalformedSchema, err)
			return
		}
		metaSchemaCompiled, metaSchemaErr = NewCompiler().compileDocument(document, true)
	})
	return metaSchemaCompiled, metaSchemaErr
}

// validateAgainstMeta checks a raw schema document against the draft-04
// meta-schema. A non-conforming document is an ErrInvalidSchema; the failing
// pointer pair is carried in the error text.
func validateAgainstMeta(document interface{}) error {
	meta, err := metaSchema()
	if err != nil {
		return err
	}
	if response := meta.Validate(document); !response.IsValid() {
		return fmt.Errorf("%w: instance %s, schema %s", ErrInvalidSchema,
			response.InstancePointer.String(), response.SchemaPointer.String())
	}
	return nil
}
