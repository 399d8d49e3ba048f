package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps a big.Rat so numeric keyword comparisons are exact. multipleOf in
// particular is defined as "instance divided by divisor is an integer", which
// floating-point division gets wrong on large and small values.
type Rat struct {
	*big.Rat
}

// NewRat creates a Rat from any numeric Go value or json.Number. It returns
// nil when the value cannot be read as a rational.
func NewRat(value interface{}) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// convertToBigRat converts various types to big.Rat.
func convertToBigRat(value interface{}) (*big.Rat, error) {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case json.Number:
		str = string(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedTypeForRat
	}

	rational := new(big.Rat)
	if _, ok := rational.SetString(str); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTypeForRat, str)
	}
	return rational, nil
}

// FormatRat formats a Rat as a plain decimal string.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}

	if r.IsInt() {
		return r.Num().String()
	}

	dec := r.FloatString(10)

	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
