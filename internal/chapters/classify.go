package chapters

import (
	"regexp"
	"strconv"
)

// Vocabulary holds the pattern tables that decide whether a heading starts
// a chapter. Keeping them as data lets additional locales be added without
// touching the classification flow.
type Vocabulary struct {
	// NonChapter matches structural headings that must never open a
	// chapter, even when a page number follows them.
	NonChapter *regexp.Regexp
	// ChapterKeyword matches an explicit chapter marker with an attached
	// number. The first non-empty capture group is the Arabic or Roman
	// chapter number.
	ChapterKeyword *regexp.Regexp
	// NumberedHeading matches a bare Arabic or Roman number followed by a
	// separator and a letter, "12. Linear Algebra" style. Group 1 is the
	// number token.
	NumberedHeading *regexp.Regexp
}

// DefaultVocabulary covers English and Korean headings.
var DefaultVocabulary = &Vocabulary{
	NonChapter: regexp.MustCompile(`(?i)^(?:(?:section|appendix|references?|bibliography|index|preface|foreword|contents)(?:[^\p{L}\p{N}]|$)|` +
		`(?:제\s*)?\d{0,4}\s*절(?:[^\p{L}]|$)|부록|참고\s*문헌|찾아보기|색인|머리말|서문|목차|차례)`),
	ChapterKeyword: regexp.MustCompile(`(?i)^(?:(?:chapter|chap\.?|ch\.?|part|unit)\s*(\d{1,4}|[ivxlcdm]{1,8})\b|` +
		`제\s*(\d{1,4})\s*장|(\d{1,4})\s*장)`),
	NumberedHeading: regexp.MustCompile(`^(\d{1,4}|[IVXLCDMivxlcdm]{1,8})(?:\s+|\s*[.)\-]\s*)[\p{Latin}\p{Hangul}]`),
}

// IsChapterLike reports whether a raw title looks like a chapter heading.
// Structural headings (appendix, references, index, ...) are rejected
// before the accept rules run.
func (v *Vocabulary) IsChapterLike(raw string) bool {
	title := SanitizeTitle(raw)
	if len([]rune(title)) < 3 {
		return false
	}
	if v.NonChapter.MatchString(title) {
		return false
	}
	if v.ChapterKeyword.MatchString(title) {
		return true
	}
	if m := v.NumberedHeading.FindStringSubmatch(title); m != nil {
		if _, err := strconv.Atoi(m[1]); err == nil {
			return true
		}
		if _, ok := RomanToInt(m[1]); ok {
			return true
		}
	}
	return false
}

// MatchesChapterKeyword reports whether the title carries an explicit
// chapter marker (rule 3 alone, without the bare-number rule). The TOC
// scanner uses this to admit heading-style lines outside a detected TOC
// window.
func (v *Vocabulary) MatchesChapterKeyword(raw string) bool {
	title := SanitizeTitle(raw)
	if len([]rune(title)) < 3 || v.NonChapter.MatchString(title) {
		return false
	}
	return v.ChapterKeyword.MatchString(title)
}

// InferChapterNumber extracts a chapter number from a title for display
// ordering hints: Arabic first (keyword-attached or bare prefix), then
// Roman, else fallback. Final range numbering never uses this.
func (v *Vocabulary) InferChapterNumber(title string, fallback int) int {
	t := SanitizeTitle(title)
	if m := v.ChapterKeyword.FindStringSubmatch(t); m != nil {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n, err := strconv.Atoi(g); err == nil && n > 0 {
				return n
			}
			if n, ok := RomanToInt(g); ok {
				return n
			}
		}
	}
	if m := v.NumberedHeading.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
		if n, ok := RomanToInt(m[1]); ok {
			return n
		}
	}
	return fallback
}
