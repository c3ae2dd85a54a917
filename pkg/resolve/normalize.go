package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and drops combining marks, so that
// accented letters reduce to their base ASCII form.
var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// suffixTokens are generational suffixes removed wherever they appear as
// standalone tokens. "Odell Beckham Jr." and "Odell Beckham" normalize equal.
var suffixTokens = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
	"v":   {},
}

// Normalize maps a display name to its canonical comparison key:
// lowercase, accents stripped, punctuation replaced by spaces, generational
// suffix tokens removed, whitespace collapsed. It is total: any input,
// including the empty string, yields a (possibly empty) key and never fails.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	lowered := strings.ToLower(name)
	stripped, _, err := transform.String(deaccent, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, tok := range fields {
		if _, skip := suffixTokens[tok]; !skip {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}
