package jsonschema

import "regexp"

// Kind is the compiled variant of a schema node, decided by the "type"
// keyword: a single type string yields the corresponding typed kind, while a
// type array or an absent type yields KindMulti.
type Kind int

const (
	KindMulti Kind = iota
	KindObject
	KindArray
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindNull
)

// patternProperty is one compiled patternProperties entry. Patterns use
// search semantics: a key is governed by the entry if the pattern matches
// anywhere in it.
type patternProperty struct {
	pattern string
	regex   *regexp.Regexp
	schema  *Schema
}

// Schema is one compiled, immutable validator node. Every variant shares the
// combinator fields and enum; each variant additionally reads the keyword
// family relevant to its type, and ignores the rest. Each node keeps a
// back-pointer to the whole raw document it was compiled from; schema
// pointers in a Response are built from keyword tokens as a failure unwinds.
//
// Compiled schemas have no shared mutable state: any number of goroutines
// may call Validate concurrently on one Schema.
type Schema struct {
	kind Kind
	root interface{} // raw document this node was compiled from

	// Combinators and enum, shared by every variant.
	allOf []*Schema
	anyOf []*Schema
	oneOf []*Schema
	not   *Schema
	enum  []interface{}

	// Object keywords.
	properties        map[string]*Schema
	propertyOrder     []string
	required          []string
	minProperties     *int
	maxProperties     *int
	propertyDeps      map[string][]string
	schemaDeps        map[string]*Schema
	dependencyOrder   []string
	patternProperties []patternProperty
	additionalOff     bool // additionalProperties: false
	additional        *Schema

	// Array keywords. items holds the single-schema form, tupleItems the
	// positional list form; at most one is set.
	items              *Schema
	tupleItems         []*Schema
	additionalItemsOff bool // additionalItems: false
	additionalItems    *Schema
	minItems           *int
	maxItems           *int
	uniqueItems        bool

	// String keywords. format is parsed but never enforced.
	minLength     *int
	maxLength     *int
	patternSource string
	pattern       *regexp.Regexp
	format        string

	// Numeric keywords, held as rationals so float comparisons are exact.
	multipleOf       *Rat
	minimum          *Rat
	maximum          *Rat
	exclusiveMinimum bool
	exclusiveMaximum bool

	// Multi variant: one compiled sub-node per accepted type name. When the
	// "type" keyword was absent entirely, acceptsAny marks that instances
	// outside the inferred type set pass.
	variants   map[string]*Schema
	acceptsAny bool
}

// Keyword families used to infer the accepted-type set of an untyped schema.
var (
	objectKeywords = []string{"properties", "required", "additionalProperties", "minProperties", "maxProperties", "dependencies", "patternProperties"}
	arrayKeywords  = []string{"items", "additionalItems", "minItems", "maxItems", "uniqueItems"}
	stringKeywords = []string{"minLength", "maxLength", "pattern", "format"}
	numberKeywords = []string{"multipleOf", "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum"}
)

// inferTypes derives the accepted-type set of a schema without a "type"
// keyword from which keyword families appear. An empty result means the node
// constrains no type: it is the universal schema, modulo combinators and
// enum.
func inferTypes(object map[string]interface{}) []string {
	var inferred []string
	appendOnce := func(name string) {
		for _, existing := range inferred {
			if existing == name {
				return
			}
		}
		inferred = append(inferred, name)
	}

	for key := range object {
		switch {
		case containsString(objectKeywords, key):
			appendOnce(typeObject)
		case containsString(arrayKeywords, key):
			appendOnce(typeArray)
		case containsString(stringKeywords, key):
			appendOnce(typeString)
		case containsString(numberKeywords, key):
			appendOnce(typeNumber)
		}
	}
	return inferred
}
