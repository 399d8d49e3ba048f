package jsonschema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// rootToken is the sentinel token denoting the document root in a
// URI-fragment pointer. It is skipped during resolution.
const rootToken = "#"

// Pointer is an RFC 6901 JSON Pointer held as a sequence of decoded tokens.
// The empty sequence addresses the document root; a leading "#" token marks a
// URI-fragment pointer. Tokens are stored decoded: parsing percent-decodes
// and undoes ~0/~1 escaping, and emitting re-applies only ~0/~1 escaping.
type Pointer struct {
	tokens []string
}

// NewPointer builds a pointer from already-decoded tokens.
func NewPointer(tokens ...string) *Pointer {
	return &Pointer{tokens: tokens}
}

// ParsePointer parses a JSON Pointer string. The empty string and "#" both
// denote the root. The input is percent-decoded as a whole before token
// splitting, so URI-fragment pointers such as "#/definitions/a%20b" resolve
// with their decoded key.
func ParsePointer(s string) (*Pointer, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrJSONPointerSegmentDecode, s)
	}

	if decoded == "" || decoded == rootToken {
		return NewPointer(rootToken), nil
	}

	if decoded[0] == '#' {
		tokens := append([]string{rootToken}, parseTokens(decoded[1:])...)
		return NewPointer(tokens...), nil
	}

	return NewPointer(parseTokens(decoded)...), nil
}

// parseTokens splits a pointer body into decoded tokens, delegating ~0/~1
// unescaping to the jsonpointer library. The library takes the RFC 6901
// form with its leading "/", the same form Format emits.
func parseTokens(body string) []string {
	if strings.TrimPrefix(body, "/") == "" {
		return nil
	}
	if !strings.HasPrefix(body, "/") {
		body = "/" + body
	}
	return jsonpointer.Parse(body)
}

// Tokens returns the decoded token sequence.
func (p *Pointer) Tokens() []string {
	if p == nil {
		return nil
	}
	return p.tokens
}

// String emits the pointer in RFC 6901 string form, re-applying ~0/~1
// escaping. A leading "#" token is preserved as the fragment marker.
func (p *Pointer) String() string {
	if p == nil {
		return ""
	}
	if len(p.tokens) > 0 && p.tokens[0] == rootToken {
		return rootToken + jsonpointer.Format(p.tokens[1:]...)
	}
	return jsonpointer.Format(p.tokens...)
}

// Resolve walks the pointer against a decoded JSON document. Object tokens
// are key lookups, array tokens are decimal indices, and the "#" sentinel is
// skipped.
func (p *Pointer) Resolve(document interface{}) (interface{}, error) {
	current := document
	for _, token := range p.tokens {
		if token == rootToken {
			continue
		}
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[token]
			if !ok {
				return nil, fmt.Errorf("%w: key %q", ErrJSONPointerNotFound, token)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 {
				return nil, fmt.Errorf("%w: %q", ErrJSONPointerIndexParse, token)
			}
			if index >= len(node) {
				return nil, fmt.Errorf("%w: index %d", ErrJSONPointerNotFound, index)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %T with %q", ErrJSONPointerNotFound, current, token)
		}
	}
	return current, nil
}

// prepend inserts tokens at the front of the pointer, after the "#" sentinel
// if one is present. Parents use this to extend a child's failure pointer on
// the way up.
func (p *Pointer) prepend(tokens ...string) {
	if len(tokens) == 0 {
		return
	}
	if len(p.tokens) > 0 && p.tokens[0] == rootToken {
		rest := append([]string{}, p.tokens[1:]...)
		p.tokens = append(append([]string{rootToken}, tokens...), rest...)
		return
	}
	p.tokens = append(append([]string{}, tokens...), p.tokens...)
}

// isJSONPointer reports whether a $ref value is a local pointer reference:
// the empty string or anything starting with "#".
func isJSONPointer(reference string) bool {
	return reference == "" || reference[0] == '#'
}
