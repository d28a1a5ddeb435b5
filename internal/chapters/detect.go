package chapters

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

// Document is the slice of the document handle chapter detection needs.
// *pdfdoc.Reader satisfies it.
type Document interface {
	OutlineSource
	PageSource
}

// DetectOptions tunes automatic chapter detection.
type DetectOptions struct {
	// MaxScanPages bounds the TOC-page scan; 0 means DefaultScanPages.
	MaxScanPages int
	// Vocabulary overrides the heading classification tables; nil means
	// DefaultVocabulary.
	Vocabulary *Vocabulary
	// Logger receives debug detail; nil means no logging.
	Logger *zap.Logger
}

// Detect opens the document and runs DetectFromDocument against it. The
// handle is scoped to this call.
func Detect(data []byte, opts DetectOptions) (DetectResult, error) {
	doc, err := pdfdoc.Open(data)
	if err != nil {
		return DetectResult{}, err
	}
	defer doc.Close()
	return DetectFromDocument(doc, opts), nil
}

// DetectFromDocument derives chapter ranges from an open document. The
// embedded outline is tried first; when it yields fewer than two chapters
// the front pages are scanned for a printed table of contents. Total
// failure is an empty result with SourceNone, so the caller can fall back
// to manual ranges.
func DetectFromDocument(doc Document, opts DetectOptions) DetectResult {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = DefaultVocabulary
	}
	total := doc.TotalPages()
	res := DetectResult{TotalPages: total, Source: SourceNone}
	if total < 1 {
		return res
	}

	ranges := BuildRanges(FromOutline(doc, vocab), total)
	source := SourceOutline
	if len(ranges) < 2 {
		log.Debug("outline unusable for chapter segmentation, scanning front pages",
			zap.Int("outline_chapters", len(ranges)))
		ranges = BuildRanges(ScanTOCPages(doc, vocab, opts.MaxScanPages), total)
		source = SourceTOCPages
	}
	if len(ranges) == 0 {
		log.Debug("no chapter structure detected", zap.Int("total_pages", total))
		return res
	}
	log.Debug("chapter ranges detected",
		zap.String("source", string(source)), zap.Int("chapters", len(ranges)))
	res.Chapters = ranges
	res.Source = source
	return res
}

// RangesFromSelections converts validated manual selections into chapter
// ranges, preserving the user's numbering and page bounds exactly. Titles
// are synthesized from the numbers.
func RangesFromSelections(sels []Selection) []ChapterRange {
	out := make([]ChapterRange, 0, len(sels))
	for _, s := range sels {
		out = append(out, ChapterRange{
			ID:        chapterID(s.Number),
			Number:    s.Number,
			Title:     chapterTitle(s.Number),
			PageStart: s.PageStart,
			PageEnd:   s.PageEnd,
		})
	}
	return out
}

func chapterID(n int) string    { return "chapter-" + strconv.Itoa(n) }
func chapterTitle(n int) string { return "Chapter " + strconv.Itoa(n) }
