package chapters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

// PageSource is the slice of the document handle the TOC-page scanner
// needs.
type PageSource interface {
	TotalPages() int
	TextFragments(page int) ([]pdfdoc.Fragment, error)
}

// DefaultScanPages bounds how many front pages the scanner reads when the
// caller does not say.
const DefaultScanPages = 24

const minScanPages = 6

// tocWindowExtend is how far past a detected contents heading the TOC
// window reaches. Repeated heading matches extend the window, never shrink
// it.
const tocWindowExtend = 3

var tocHeadings = []string{"table of contents", "contents", "목차", "차례"}

// tocLineRe splits "Title .... 23" style lines: a title segment, then at
// least two leader characters or plain whitespace, then 1-4 digits at line
// end.
var tocLineRe = regexp.MustCompile(`^(.*?\pL.*?)(?:\s*(?:[.·•⋯…]\s*){2,}|\s+)(\d{1,4})\s*$`)

// ScanTOCPages looks for a printed table of contents in the first
// maxScanPages pages (clamped to [6, totalPages]; 0 means the default) and
// parses its title/page lines into chapter boundary candidates. Returns nil
// when fewer than two candidates survive. Scanning is best effort: lines
// that do not match the pattern are skipped silently.
func ScanTOCPages(src PageSource, vocab *Vocabulary, maxScanPages int) []TocEntry {
	if vocab == nil {
		vocab = DefaultVocabulary
	}
	total := src.TotalPages()
	if total < 1 {
		return nil
	}
	if maxScanPages <= 0 {
		maxScanPages = DefaultScanPages
	}
	if maxScanPages < minScanPages {
		maxScanPages = minScanPages
	}
	if maxScanPages > total {
		maxScanPages = total
	}

	var entries []TocEntry
	windowEnd := 0 // last page (1-based) still inside a TOC window; 0 = none open
	for page := 1; page <= maxScanPages; page++ {
		frags, err := src.TextFragments(page)
		if err != nil {
			continue
		}
		lines := assembleLines(frags)
		if hasTOCHeading(strings.Join(lines, "\n")) && page+tocWindowExtend > windowEnd {
			windowEnd = page + tocWindowExtend
		}
		for _, line := range lines {
			title, listed, ok := parseTOCLine(line)
			if !ok {
				continue
			}
			// Outside a window only explicit chapter headings count;
			// this keeps a price list from becoming chapters while a
			// running "Chapter 7" header still registers.
			if page > windowEnd && !vocab.MatchesChapterKeyword(title) {
				continue
			}
			if listed > total {
				listed = total
			}
			if listed < 1 {
				continue
			}
			entries = append(entries, TocEntry{Title: title, PageStart: listed, Depth: 0})
		}
	}
	if len(entries) < 2 {
		return nil
	}
	return entries
}

// assembleLines joins fragments between hard line-break markers into
// whitespace-collapsed lines.
func assembleLines(frags []pdfdoc.Fragment) []string {
	var lines []string
	var cur strings.Builder
	flush := func() {
		line := strings.Join(strings.Fields(cur.String()), " ")
		if line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}
	for _, f := range frags {
		cur.WriteString(f.Text)
		cur.WriteByte(' ')
		if f.LineBreak {
			flush()
		}
	}
	flush()
	return lines
}

func hasTOCHeading(pageText string) bool {
	lower := strings.ToLower(pageText)
	for _, h := range tocHeadings {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// parseTOCLine extracts (title, listed page) from one line. It reports
// false when the line has no trailing page number or the title sanitizes to
// nothing.
func parseTOCLine(line string) (string, int, bool) {
	m := tocLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	title := SanitizeTitle(m[1])
	if title == "" {
		return "", 0, false
	}
	page, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return title, page, true
}
