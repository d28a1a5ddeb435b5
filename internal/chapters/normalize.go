package chapters

import (
	"regexp"
	"strings"
)

// leaderRe matches the filler that printed tables of contents put between a
// title and its page number: runs of dot/bullet leaders, or 3+ repeated
// dot/underscore/dash characters.
var leaderRe = regexp.MustCompile(`[·•⋯…]+|[._\-]{3,}`)

// SanitizeTitle collapses whitespace runs to single spaces, strips leader
// sequences, and trims. It is total and idempotent.
func SanitizeTitle(raw string) string {
	s := leaderRe.ReplaceAllString(raw, " ")
	return strings.Join(strings.Fields(s), " ")
}

var romanValues = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt decodes a Roman numeral with standard subtractive rules,
// case-insensitively. It reports false for empty input, any rune outside
// I,V,X,L,C,D,M, or a non-positive decoded value.
func RomanToInt(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	total := 0
	prev := 0
	for _, r := range strings.ToUpper(token) {
		v, ok := romanValues[r]
		if !ok {
			return 0, false
		}
		total += v
		if prev < v {
			// The previous numeral was subtractive (e.g. the I in IV):
			// it was added once and must be removed twice.
			total -= 2 * prev
		}
		prev = v
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}
