package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Justin Jefferson", "justin jefferson"},
		{"accents stripped", "José Alí", "jose ali"},
		{"punctuation", "A.J. Brown", "a j brown"},
		{"apostrophe", "De'Von Achane", "de von achane"},
		{"suffix jr", "Odell Beckham Jr.", "odell beckham"},
		{"suffix sr", "Marvin Harrison Sr", "marvin harrison"},
		{"suffix roman", "Will Fuller V", "will fuller"},
		{"suffix iii", "Brian Thomas III", "brian thomas"},
		{"accents and suffix", "José Alí Jr.", "jose ali"},
		{"whitespace collapsed", "  Kenneth   Walker  III ", "kenneth walker"},
		{"digits kept", "Agent 86", "agent 86"},
		{"empty", "", ""},
		{"only punctuation", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// Names differing only in case, accents, punctuation, or a generational
	// suffix must produce identical keys.
	groups := [][]string{
		{"José Alí Jr.", "jose ali", "JOSE ALI", "Jose-Ali"},
		{"Ja'Marr Chase", "Ja Marr Chase", "ja'marr chase"},
		{"Patrick Mahomes II", "Patrick Mahomes", "patrick MAHOMES"},
	}

	for _, group := range groups {
		first := Normalize(group[0])
		for _, name := range group[1:] {
			assert.Equal(t, first, Normalize(name), "Normalize(%q) != Normalize(%q)", name, group[0])
		}
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// Garbage in, key out. Never panics, never errors.
	for _, input := range []string{"\x00", "🏈🏈🏈", "ьъ", "�", "jr sr ii iii iv v"} {
		assert.NotPanics(t, func() { Normalize(input) })
	}
	// A name that is nothing but suffix tokens collapses to empty.
	assert.Equal(t, "", Normalize("Jr. Sr. III"))
}
