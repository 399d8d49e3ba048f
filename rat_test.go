package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRat(t *testing.T) {
	assert.Equal(t, "10", FormatRat(NewRat(10)))
	assert.Equal(t, "0.5", FormatRat(NewRat(0.5)))
	assert.Equal(t, "3", FormatRat(NewRat(json.Number("3"))))
	assert.Nil(t, NewRat(true))
	assert.Nil(t, NewRat(nil))
}

func TestRatExactComparison(t *testing.T) {
	a := NewRat(0.0075)
	b := NewRat(json.Number("0.0075"))
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Zero(t, a.Cmp(b.Rat))
}
