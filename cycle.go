package jsonschema

import "fmt"

// refWalker rejects schemas whose $ref graph forms a purely referential
// cycle with no concrete content. $ref jumps and "not" edges extend the
// current chain; a chain that returns to one of its own references has
// nothing but references and negation in it, which no evaluation strategy
// can give meaning to. Children of anyOf/allOf/oneOf are alternatives, not
// mandatory paths, so each child starts a fresh chain, as does each
// definitions entry. The inProgress memo keeps the walk finite on schemas
// that are legitimately recursive through branch combinators.
//
// Only local pointer references are chased here; remote references are
// checked when their own document compiles.
type refWalker struct {
	root       interface{}
	inProgress map[string]bool
}

// checkReferences walks a raw schema tree before compilation and returns
// ErrCircularReference wrapped in ErrMalformedSchema when a content-free
// cycle exists, or a resolution error when a local $ref is broken. Local
// references resolve against root; start is where the walk begins, which
// differs from root only when compiling a fragment of a larger document.
func checkReferences(root, start interface{}) error {
	walker := &refWalker{root: root, inProgress: make(map[string]bool)}
	return walker.walk(start, make(map[string]bool))
}

func (w *refWalker) walk(node interface{}, traveled map[string]bool) error {
	object, ok := node.(map[string]interface{})
	if !ok {
		return nil
	}

	if rawRef, present := object["$ref"]; present {
		reference, ok := rawRef.(string)
		if !ok {
			return fmt.Errorf("%w: $ref must be a string", ErrMalformedSchema)
		}
		if isJSONPointer(reference) {
			if traveled[reference] {
				return fmt.Errorf("%w: %w through %q", ErrMalformedSchema, ErrCircularReference, reference)
			}
			if !w.inProgress[reference] {
				w.inProgress[reference] = true
				target, err := w.resolve(reference)
				if err != nil {
					return err
				}
				traveled[reference] = true
				err = w.walk(target, traveled)
				delete(traveled, reference)
				delete(w.inProgress, reference)
				if err != nil {
					return err
				}
			}
		}
	}

	for _, keyword := range []string{"anyOf", "allOf", "oneOf"} {
		if children, ok := object[keyword].([]interface{}); ok {
			for _, child := range children {
				if err := w.walk(child, make(map[string]bool)); err != nil {
					return err
				}
			}
		}
	}

	if child, present := object["not"]; present {
		if err := w.walk(child, traveled); err != nil {
			return err
		}
	}

	if definitions, ok := object["definitions"].(map[string]interface{}); ok {
		for _, child := range definitions {
			if err := w.walk(child, make(map[string]bool)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *refWalker) resolve(reference string) (interface{}, error) {
	pointer, err := ParsePointer(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
	}
	target, err := pointer.Resolve(w.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %q: %w", ErrMalformedSchema, ErrReferenceResolution, reference, err)
	}
	return target, nil
}
