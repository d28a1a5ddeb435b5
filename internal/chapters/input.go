package chapters

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// selectionRe matches one manual range token: an optional chapter number
// prefix ("3:" or "3장:"), then "start-end". A dash, en dash, or tilde
// separates the pages.
var selectionRe = regexp.MustCompile(`^(?:(\d{1,4})\s*장?\s*[:：]\s*)?(\d{1,5})\s*[-–~]\s*(\d{1,5})$`)

// ParseRangeInput parses free-text chapter range overrides. Tokens are
// separated by commas, semicolons, or newlines; each is either
// "chapter:start-end" or a bare "start-end", the latter numbered
// sequentially after the highest explicit number seen so far. The whole
// input is rejected on the first malformed token, duplicate chapter number,
// overlapping page, or out-of-bounds range — no partial application.
func ParseRangeInput(text string, totalPages int) ([]Selection, error) {
	tokens := splitSelections(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no chapter ranges given")
	}

	var out []Selection
	seenNumber := map[int]bool{}
	nextNumber := 1
	for _, tok := range tokens {
		m := selectionRe.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("unrecognized range %q: expected \"chapter:start-end\" or \"start-end\"", tok)
		}
		start, _ := strconv.Atoi(m[2])
		end, _ := strconv.Atoi(m[3])
		number := nextNumber
		if m[1] != "" {
			number, _ = strconv.Atoi(m[1])
		}
		if number < 1 {
			return nil, fmt.Errorf("invalid chapter number in %q", tok)
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q: start must be at least 1 and not after end", tok)
		}
		if totalPages > 0 && end > totalPages {
			return nil, fmt.Errorf("range %q ends past the last page (%d)", tok, totalPages)
		}
		if seenNumber[number] {
			return nil, fmt.Errorf("chapter number %d appears more than once", number)
		}
		seenNumber[number] = true
		if number >= nextNumber {
			nextNumber = number + 1
		}
		out = append(out, Selection{Number: number, PageStart: start, PageEnd: end})
	}

	if page, a, b, ok := findOverlap(out); ok {
		return nil, fmt.Errorf("chapters %d and %d both claim page %d", a, b, page)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PageStart < out[j].PageStart })
	return out, nil
}

func splitSelections(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	var tokens []string
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// findOverlap reports the first page claimed by two selections, with both
// chapter numbers.
func findOverlap(sels []Selection) (page, chapterA, chapterB int, ok bool) {
	byStart := make([]Selection, len(sels))
	copy(byStart, sels)
	sort.Slice(byStart, func(i, j int) bool { return byStart[i].PageStart < byStart[j].PageStart })
	for i := 1; i < len(byStart); i++ {
		prev, cur := byStart[i-1], byStart[i]
		if cur.PageStart <= prev.PageEnd {
			return cur.PageStart, prev.Number, cur.Number, true
		}
	}
	return 0, 0, 0, false
}
