package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Social Mobility in America", Clean("\n  Social\tMobility \n in   America  "))
}

func TestClean_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Clean(""))
	assert.Empty(t, Clean(" \n\t "))
}

func TestClean_ComposesDecomposedRunes(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent composes to a single rune.
	assert.Equal(t, "Durkh\u00e9im", Clean("Durkhe\u0301im"))
}

func TestClean_DropsControlRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", Clean("a\x00b"))
}

func TestHasNumeral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"class", false},
		{"1980s", true},
		{"h2o", true},
		{"½", true},
		{"١", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, HasNumeral(tt.in))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"42", true},
		{"1984", true},
		{"4th", false},
		{"²", true},
		{"3.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsNumeric(tt.in))
		})
	}
}

func TestRuneLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, RuneLen(""))
	assert.Equal(t, 4, RuneLen("1984"))
	assert.Equal(t, 4, RuneLen("١٩٨٤"))
}
