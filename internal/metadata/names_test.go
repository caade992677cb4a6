package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"Plato", "Plato"},
		{"F. Scott Fitzgerald", "Fitzgerald"},
		{"Vincent van Gogh", "van Gogh"},
		{"Ludwig van Beethoven", "van Beethoven"},
		{"Flann O'Brien", "O'Brien"},
		{"Leonardo da Vinci", "da Vinci"},
		{"Johannes Vermeer van Delft", "van Delft"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LastName(tc.in), "LastName(%q)", tc.in)
	}
}

func TestFormatLastNames(t *testing.T) {
	assert.Equal(t, "Unknown", formatLastNames(""))
	assert.Equal(t, "Smith", formatLastNames("Smith"))
	assert.Equal(t, "Smith, Jones", formatLastNames("Smith and Jones"))
	assert.Equal(t, "Smith, Jones", formatLastNames("Smith & Jones"))
	assert.Equal(t, "A, B, C", formatLastNames("A; B; C"))
	assert.Equal(t, "A, B, C et al", formatLastNames("A, B, C, D"))
	// duplicates are collapsed
	assert.Equal(t, "Smith", formatLastNames("Smith and Smith"))
}
