package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The cart deduplicates line items on (productId, attributes): the
// attributes struct is the comparable half of that key, so two equal
// configurations must compare equal and any differing field must not.
func TestCartAttributes_EqualityKey(t *testing.T) {
	base := CartAttributes{
		Edition:   "shemah_israel",
		Model:     "modelo_1",
		Color:     "blanco",
		Size:      "M",
		Tzitziyot: true,
		Gender:    "masculino",
	}

	same := base
	assert.True(t, base == same, "identical configurations must merge into one line item")

	differentSize := base
	differentSize.Size = "L"
	assert.False(t, base == differentSize)

	withoutTzitziyot := base
	withoutTzitziyot.Tzitziyot = false
	assert.False(t, base == withoutTzitziyot)

	differentColor := base
	differentColor.Color = "negro"
	assert.False(t, base == differentColor)
}
