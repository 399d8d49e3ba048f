package jsonschema

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/goccy/go-json"
)

// Compiler turns raw draft-04 schema documents into immutable Schema graphs.
// It owns the transport loaders, the media type handlers, and a cache of raw
// documents keyed by origin so a reference fetched once is never fetched
// again. Compilation of a single schema is single-threaded; the compiled
// result is safe for concurrent validation.
type Compiler struct {
	mu         sync.Mutex
	Loaders    map[string]func(url string) (io.ReadCloser, error) // Functions to load schemas by URI scheme.
	MediaTypes map[string]func([]byte) (interface{}, error)       // Unmarshal functions by media type.
	documents  map[string]interface{}                             // Raw document cache keyed by origin.
}

// NewCompiler creates a Compiler with the default HTTP, HTTPS and FTP
// loaders and the JSON and YAML media types registered.
func NewCompiler() *Compiler {
	compiler := &Compiler{
		Loaders:    make(map[string]func(url string) (io.ReadCloser, error)),
		MediaTypes: make(map[string]func([]byte) (interface{}, error)),
		documents:  make(map[string]interface{}),
	}
	compiler.setupMediaTypes()
	compiler.setupLoaders()
	return compiler
}

// RegisterLoader adds a loader function for a URI scheme.
func (c *Compiler) RegisterLoader(scheme string, loaderFunc func(url string) (io.ReadCloser, error)) *Compiler {
	c.Loaders[scheme] = loaderFunc
	return c
}

// RegisterMediaType adds an unmarshal function for a media type.
func (c *Compiler) RegisterMediaType(mediaTypeName string, unmarshalFunc func([]byte) (interface{}, error)) *Compiler {
	c.MediaTypes[mediaTypeName] = unmarshalFunc
	return c
}

// Compile compiles raw JSON schema bytes.
func (c *Compiler) Compile(data []byte) (*Schema, error) {
	document, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
	}
	return c.compileDocument(document, false)
}

// GetSchema compiles a schema document. Raw bytes are decoded as JSON;
// anything else is taken as an already-decoded value tree.
func (c *Compiler) GetSchema(document interface{}) (*Schema, error) {
	switch d := document.(type) {
	case []byte:
		return c.Compile(d)
	case json.RawMessage:
		return c.Compile([]byte(d))
	}
	return c.compileDocument(document, false)
}

// GetSchemaFromFile reads, decodes and compiles a schema document from the
// filesystem. YAML files are recognized by extension; everything else is
// decoded as JSON.
func (c *Compiler) GetSchemaFromFile(path string) (*Schema, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
	}

	document, err := c.fetchFile(absolute)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSchema, path, err)
	}

	return c.compileDocument(document, false)
}

// GetSchemaFromURL fetches, decodes and compiles a schema document from an
// http, https or ftp URL. A URL fragment that is a JSON Pointer selects the
// sub-schema to compile within the fetched document; any other fragment
// falls back to the document root.
func (c *Compiler) GetSchemaFromURL(rawURL string) (*Schema, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedSchema, rawURL, err)
	}

	fragment := parsed.Fragment
	parsed.Fragment = ""
	parsed.RawFragment = ""
	origin := parsed.String()

	document, err := c.fetchURL(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSchema, origin, err)
	}

	target := document
	if fragment != "" {
		if fragment[0] != '/' {
			// Non-pointer fragments have no draft-04 meaning here; the
			// fetched root stands in.
			return c.compileDocument(document, false)
		}
		pointer, err := ParsePointer(fragment)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
		}
		target, err = pointer.Resolve(document)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q: %w", ErrMalformedSchema, ErrReferenceResolution, rawURL, err)
		}
	}

	return c.compileTarget(document, target, false)
}

// fetchFile loads and decodes a schema file, caching by absolute path.
func (c *Compiler) fetchFile(absolute string) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if document, ok := c.documents[absolute]; ok {
		return document, nil
	}

	data, err := os.ReadFile(absolute)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	handler, err := c.mediaTypeFor(absolute)
	if err != nil {
		return nil, err
	}
	document, err := handler(data)
	if err != nil {
		return nil, err
	}

	c.documents[absolute] = document
	return document, nil
}

// compileDocument runs the full pipeline on a whole document: cycle check,
// meta-schema validation (skipped only when compiling the meta-schema
// itself), then node construction.
func (c *Compiler) compileDocument(document interface{}, meta bool) (*Schema, error) {
	return c.compileTarget(document, document, meta)
}

// compileTarget compiles target with document as the resolution root for
// local references.
func (c *Compiler) compileTarget(document, target interface{}, meta bool) (*Schema, error) {
	if err := checkReferences(document, target); err != nil {
		return nil, err
	}
	if !meta {
		if err := validateAgainstMeta(target); err != nil {
			return nil, err
		}
	}
	sess := &session{compiler: c, root: document, defs: make(map[string]*Schema)}
	return sess.compile(target, "")
}

// session is the state of one compilation pass over one document: the
// resolution root and the definition table that shares compiled nodes
// between $ref sites and terminates recursion.
type session struct {
	compiler *Compiler
	root     interface{}
	defs     map[string]*Schema
}

// compile builds the validator node for a raw schema value. path is the
// canonical reference string this node was reached by, or empty when it was
// not reached through a $ref.
func (s *session) compile(raw interface{}, path string) (*Schema, error) {
	object, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: schema must be an object, got %T", ErrMalformedSchema, raw)
	}
	if ref, present := object["$ref"]; present {
		return s.compileRef(ref)
	}
	return s.build(object, path)
}

// compileRef resolves a $ref. A reference already in the definition table
// reuses its node, which is what makes recursive schemas finite graphs with
// back edges. Local pointers resolve against the session root; URLs and
// filesystem paths start a fresh pipeline over the fetched document, sharing
// the compiler's document cache.
func (s *session) compileRef(rawRef interface{}) (*Schema, error) {
	reference, ok := rawRef.(string)
	if !ok {
		return nil, fmt.Errorf("%w: $ref must be a string, got %T", ErrMalformedSchema, rawRef)
	}

	if node, ok := s.defs[reference]; ok {
		return node, nil
	}

	switch {
	case isJSONPointer(reference):
		pointer, err := ParsePointer(reference)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
		}
		target, err := pointer.Resolve(s.root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q: %w", ErrMalformedSchema, ErrReferenceResolution, reference, err)
		}
		return s.compile(target, reference)
	case isValidURL(reference):
		return s.compiler.GetSchemaFromURL(reference)
	default:
		return s.compiler.GetSchemaFromFile(reference)
	}
}

// build constructs a node from a schema object without a $ref. When the node
// was reached through a reference it enters the definition table before its
// children compile, so inner references pointing back at the same key
// resolve to it instead of recursing forever.
func (s *session) build(object map[string]interface{}, path string) (*Schema, error) {
	node := &Schema{root: s.root}
	if path != "" {
		s.defs[path] = node
	}

	if err := s.buildShared(node, object); err != nil {
		return nil, err
	}

	switch typeValue := object["type"].(type) {
	case string:
		if err := s.buildTyped(node, typeValue, object); err != nil {
			return nil, err
		}
	case []interface{}:
		node.kind = KindMulti
		node.variants = make(map[string]*Schema)
		for _, name := range typeValue {
			typeName, ok := name.(string)
			if !ok {
				return nil, fmt.Errorf("%w: type entries must be strings, got %T", ErrMalformedSchema, name)
			}
			variant, err := s.buildVariant(typeName, object)
			if err != nil {
				return nil, err
			}
			node.variants[typeName] = variant
		}
	default:
		// No type keyword: the accepted-type set is inferred from which
		// keyword families appear, and untyped instances pass.
		node.kind = KindMulti
		node.acceptsAny = true
		node.variants = make(map[string]*Schema)
		for _, typeName := range inferTypes(object) {
			variant, err := s.buildVariant(typeName, object)
			if err != nil {
				return nil, err
			}
			node.variants[typeName] = variant
		}
	}

	return node, nil
}

// buildShared fills the fields every variant carries: combinators and enum.
func (s *session) buildShared(node *Schema, object map[string]interface{}) error {
	var err error
	if node.anyOf, err = s.compileList(object, "anyOf"); err != nil {
		return err
	}
	if node.allOf, err = s.compileList(object, "allOf"); err != nil {
		return err
	}
	if node.oneOf, err = s.compileList(object, "oneOf"); err != nil {
		return err
	}
	if raw, present := object["not"]; present {
		if node.not, err = s.compile(raw, ""); err != nil {
			return err
		}
	}
	if values, ok := object["enum"].([]interface{}); ok {
		node.enum = values
	}
	return nil
}

func (s *session) compileList(object map[string]interface{}, keyword string) ([]*Schema, error) {
	children, ok := object[keyword].([]interface{})
	if !ok {
		return nil, nil
	}
	compiled := make([]*Schema, 0, len(children))
	for _, child := range children {
		node, err := s.compile(child, "")
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, node)
	}
	return compiled, nil
}

// buildTyped fills the variant fields for a single type name. Keywords from
// other families stay unread: a string schema never looks at items.
func (s *session) buildTyped(node *Schema, typeName string, object map[string]interface{}) error {
	switch typeName {
	case typeObject:
		node.kind = KindObject
		return s.buildObject(node, object)
	case typeArray:
		node.kind = KindArray
		return s.buildArray(node, object)
	case typeString:
		node.kind = KindString
		return buildString(node, object)
	case typeInteger:
		node.kind = KindInteger
		buildNumeric(node, object)
	case typeNumber:
		node.kind = KindNumber
		buildNumeric(node, object)
	case typeBoolean:
		node.kind = KindBoolean
	case typeNull:
		node.kind = KindNull
	default:
		return fmt.Errorf("%w: unknown type %q", ErrMalformedSchema, typeName)
	}
	return nil
}

// buildVariant compiles one sub-node of a Multi schema. Combinators and enum
// stay on the Multi node itself, which evaluates them once before
// dispatching.
func (s *session) buildVariant(typeName string, object map[string]interface{}) (*Schema, error) {
	variant := &Schema{root: s.root}
	if err := s.buildTyped(variant, typeName, object); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *session) buildObject(node *Schema, object map[string]interface{}) error {
	if rawProperties, ok := object["properties"].(map[string]interface{}); ok {
		node.properties = make(map[string]*Schema, len(rawProperties))
		node.propertyOrder = sortedKeys(rawProperties)
		for _, key := range node.propertyOrder {
			child, err := s.compile(rawProperties[key], "")
			if err != nil {
				return err
			}
			node.properties[key] = child
		}
	}

	if rawRequired, ok := object["required"].([]interface{}); ok {
		node.required = toStringSlice(rawRequired)
	}

	node.minProperties = intKeyword(object, "minProperties")
	node.maxProperties = intKeyword(object, "maxProperties")

	if rawDependencies, ok := object["dependencies"].(map[string]interface{}); ok {
		node.propertyDeps = make(map[string][]string)
		node.schemaDeps = make(map[string]*Schema)
		node.dependencyOrder = sortedKeys(rawDependencies)
		for _, key := range node.dependencyOrder {
			switch dependency := rawDependencies[key].(type) {
			case []interface{}:
				node.propertyDeps[key] = toStringSlice(dependency)
			default:
				child, err := s.compile(dependency, "")
				if err != nil {
					return err
				}
				node.schemaDeps[key] = child
			}
		}
	}

	if rawAdditional, present := object["additionalProperties"]; present {
		switch additional := rawAdditional.(type) {
		case bool:
			node.additionalOff = !additional
		default:
			child, err := s.compile(additional, "")
			if err != nil {
				return err
			}
			node.additional = child
		}
	}

	if rawPatterns, ok := object["patternProperties"].(map[string]interface{}); ok {
		for _, pattern := range sortedKeys(rawPatterns) {
			regex, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("%w: patternProperties %q: %w", ErrMalformedSchema, pattern, err)
			}
			child, err := s.compile(rawPatterns[pattern], "")
			if err != nil {
				return err
			}
			node.patternProperties = append(node.patternProperties, patternProperty{
				pattern: pattern,
				regex:   regex,
				schema:  child,
			})
		}
	}

	return nil
}

func (s *session) buildArray(node *Schema, object map[string]interface{}) error {
	switch rawItems := object["items"].(type) {
	case map[string]interface{}:
		child, err := s.compile(rawItems, "")
		if err != nil {
			return err
		}
		node.items = child
	case []interface{}:
		node.tupleItems = make([]*Schema, 0, len(rawItems))
		for _, rawItem := range rawItems {
			child, err := s.compile(rawItem, "")
			if err != nil {
				return err
			}
			node.tupleItems = append(node.tupleItems, child)
		}
	}

	if rawAdditional, present := object["additionalItems"]; present {
		switch additional := rawAdditional.(type) {
		case bool:
			node.additionalItemsOff = !additional
		default:
			child, err := s.compile(additional, "")
			if err != nil {
				return err
			}
			node.additionalItems = child
		}
	}

	node.minItems = intKeyword(object, "minItems")
	node.maxItems = intKeyword(object, "maxItems")
	if unique, ok := object["uniqueItems"].(bool); ok {
		node.uniqueItems = unique
	}

	return nil
}

func buildString(node *Schema, object map[string]interface{}) error {
	node.minLength = intKeyword(object, "minLength")
	node.maxLength = intKeyword(object, "maxLength")

	if pattern, ok := object["pattern"].(string); ok {
		regex, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("%w: pattern %q: %w", ErrMalformedSchema, pattern, err)
		}
		node.patternSource = pattern
		node.pattern = regex
	}

	// format is parsed for round-trip fidelity but never enforced.
	if format, ok := object["format"].(string); ok {
		node.format = format
	}

	return nil
}

func buildNumeric(node *Schema, object map[string]interface{}) {
	if raw, present := object["multipleOf"]; present {
		node.multipleOf = NewRat(raw)
	}
	if raw, present := object["minimum"]; present {
		node.minimum = NewRat(raw)
	}
	if raw, present := object["maximum"]; present {
		node.maximum = NewRat(raw)
	}
	if exclusive, ok := object["exclusiveMinimum"].(bool); ok {
		node.exclusiveMinimum = exclusive
	}
	if exclusive, ok := object["exclusiveMaximum"].(bool); ok {
		node.exclusiveMaximum = exclusive
	}
}

// GetSchema compiles a raw schema document with a fresh default Compiler.
func GetSchema(document interface{}) (*Schema, error) {
	return NewCompiler().GetSchema(document)
}

// GetSchemaFromFile compiles a schema file with a fresh default Compiler.
func GetSchemaFromFile(path string) (*Schema, error) {
	return NewCompiler().GetSchemaFromFile(path)
}

// GetSchemaFromURL fetches and compiles a schema URL with a fresh default Compiler.
func GetSchemaFromURL(rawURL string) (*Schema, error) {
	return NewCompiler().GetSchemaFromURL(rawURL)
}
