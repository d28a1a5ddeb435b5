// Package extract pulls text out of a PDF scoped to explicit page lists or
// chapter ranges, with a fixed fallback ladder of content readings and an
// optional OCR pass for documents that expose no extractable text.
package extract

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/studyforge/pdfchapters/internal/chapters"
	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

// Document is the slice of the document handle extraction needs.
// *pdfdoc.Reader satisfies it.
type Document interface {
	TotalPages() int
	PageText(page int, mode pdfdoc.TextMode) (string, error)
	RenderPNG(page int, scale float64) ([]byte, error)
}

// Source says where a result's text came from.
type Source string

const (
	// SourceNone means no attempt yielded text.
	SourceNone Source = ""
	// SourcePrimary means the content-reading ladder yielded text.
	SourcePrimary Source = "primary"
	// SourceOCR means text came from the OCR fallback.
	SourceOCR Source = "ocr"
)

// Result is the outcome of one extraction request: collapsed text capped at
// the request's budget, the pages that actually contributed, and the source
// of the text. Empty text is a valid outcome, not an error.
type Result struct {
	Text      string `json:"text"`
	PagesUsed []int  `json:"pages_used"`
	Source    Source `json:"source,omitempty"`
}

// OCRUsed reports whether the text came from the OCR fallback.
func (r Result) OCRUsed() bool { return r.Source == SourceOCR }

// RangeResult pairs a chapter range with its extraction outcome.
type RangeResult struct {
	chapters.ChapterRange
	Result
}

// RangesResult is the outcome of a by-ranges extraction request.
type RangesResult struct {
	TotalPages int           `json:"total_pages"`
	Chapters   []RangeResult `json:"chapters"`
}

// DefaultMaxLength is the rune budget applied when an Options leaves
// MaxLength zero.
const DefaultMaxLength = 100000

// DefaultOCRScale is the raster scale (multiples of 72 DPI) for the OCR
// fallback.
const DefaultOCRScale = 2.0

// Options tunes one extraction call. MaxLength is the rune budget for the
// whole request in by-pages mode and per range in by-ranges mode. OCR nil
// disables the fallback entirely.
type Options struct {
	MaxLength     int
	OCR           Recognizer
	OCRLang       string
	OCRScale      float64
	OnOCRProgress ProgressFunc
	Logger        *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.OCRScale <= 0 {
		o.OCRScale = DefaultOCRScale
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ForPages extracts text from an explicit page list. Pages are
// deduplicated, bounded to the document, and read in ascending order until
// the budget is met. When the whole pass yields nothing and a recognizer is
// configured, the same pages are re-processed through OCR. An empty page
// list short-circuits to an empty result without touching OCR.
func ForPages(ctx context.Context, doc Document, pages []int, opts Options) (Result, error) {
	opts = opts.withDefaults()
	r := newRun(doc, opts)
	normalized := normalizePages(pages, doc.TotalPages())
	if len(normalized) == 0 {
		return Result{PagesUsed: []int{}}, nil
	}

	col := newCollector(opts.MaxLength)
	for _, page := range normalized {
		if col.add(page, r.pageText(page)) {
			break
		}
	}
	text, used := col.take()
	if text != "" {
		return Result{Text: text, PagesUsed: used, Source: SourcePrimary}, nil
	}
	if opts.OCR == nil {
		return Result{PagesUsed: []int{}}, nil
	}

	opts.Logger.Debug("no extractable text, falling back to OCR", zap.Int("pages", len(normalized)))
	col = newCollector(opts.MaxLength)
	if err := r.ocrInto(ctx, col, normalized, len(normalized), 0); err != nil {
		return Result{}, err
	}
	text, used = col.take()
	if text == "" {
		return Result{PagesUsed: []int{}}, nil
	}
	return Result{Text: text, PagesUsed: used, Source: SourceOCR}, nil
}

// ForRanges extracts text for each chapter range independently, each under
// its own budget, in page order. Page text is cached across ranges within
// this call, so overlapping or repeated pages are read once. The OCR
// fallback applies only to the ranges that ended up empty; ranges that got
// text from the primary pass are left untouched.
func ForRanges(ctx context.Context, doc Document, ranges []chapters.ChapterRange, opts Options) ([]RangeResult, error) {
	opts = opts.withDefaults()
	r := newRun(doc, opts)
	total := doc.TotalPages()

	out := make([]RangeResult, 0, len(ranges))
	for _, cr := range ranges {
		col := newCollector(opts.MaxLength)
		for _, page := range rangePages(cr, total) {
			if col.add(page, r.pageText(page)) {
				break
			}
		}
		text, used := col.take()
		res := Result{Text: text, PagesUsed: used}
		if text != "" {
			res.Source = SourcePrimary
		} else {
			res.PagesUsed = []int{}
		}
		out = append(out, RangeResult{ChapterRange: cr, Result: res})
	}

	if opts.OCR == nil {
		return out, nil
	}
	var empty []int
	ocrTotal := 0
	for i := range out {
		if out[i].Text == "" {
			empty = append(empty, i)
			ocrTotal += len(rangePages(out[i].ChapterRange, total))
		}
	}
	if len(empty) == 0 {
		return out, nil
	}

	opts.Logger.Debug("OCR fallback for empty ranges", zap.Int("ranges", len(empty)))
	done := 0
	for _, i := range empty {
		pages := rangePages(out[i].ChapterRange, total)
		col := newCollector(opts.MaxLength)
		if err := r.ocrInto(ctx, col, pages, ocrTotal, done); err != nil {
			return nil, err
		}
		done += len(pages)
		text, used := col.take()
		if text == "" {
			continue
		}
		out[i].Text = text
		out[i].PagesUsed = used
		out[i].Source = SourceOCR
	}
	return out, nil
}

// PagesFromBytes opens the document for the duration of one by-pages
// extraction call.
func PagesFromBytes(ctx context.Context, data []byte, pages []int, opts Options) (Result, error) {
	doc, err := pdfdoc.Open(data)
	if err != nil {
		return Result{}, err
	}
	defer doc.Close()
	return ForPages(ctx, doc, pages, opts)
}

// RangesFromBytes opens the document for the duration of one by-ranges
// extraction call.
func RangesFromBytes(ctx context.Context, data []byte, ranges []chapters.ChapterRange, opts Options) (RangesResult, error) {
	doc, err := pdfdoc.Open(data)
	if err != nil {
		return RangesResult{}, err
	}
	defer doc.Close()
	out, err := ForRanges(ctx, doc, ranges, opts)
	if err != nil {
		return RangesResult{}, err
	}
	return RangesResult{TotalPages: doc.TotalPages(), Chapters: out}, nil
}

// run holds the per-call caches. Page text and OCR text are each computed
// at most once per page within one extraction call.
type run struct {
	doc      Document
	opts     Options
	cache    map[int]string
	ocrCache map[int]string
}

func newRun(doc Document, opts Options) *run {
	return &run{doc: doc, opts: opts, cache: map[int]string{}, ocrCache: map[int]string{}}
}

// pageText walks the reading-mode ladder until one yields text. Mode
// errors and empty readings both mean "try the next one"; a page where
// every mode comes up empty contributes nothing.
func (r *run) pageText(page int) string {
	if t, ok := r.cache[page]; ok {
		return t
	}
	var text string
	for _, mode := range pdfdoc.TextModes {
		t, err := r.doc.PageText(page, mode)
		if err != nil {
			r.opts.Logger.Debug("text reading failed",
				zap.Int("page", page), zap.Stringer("mode", mode), zap.Error(err))
			continue
		}
		if strings.TrimSpace(t) != "" {
			text = t
			break
		}
	}
	r.cache[page] = text
	return text
}

// ocrInto recognizes pages into the collector, reporting progress against
// the whole fallback run. Recognizer failures abort the call.
func (r *run) ocrInto(ctx context.Context, col *collector, pages []int, total, done int) error {
	for _, page := range pages {
		text, err := r.ocrPage(ctx, page)
		if err != nil {
			return err
		}
		done++
		if r.opts.OnOCRProgress != nil {
			r.opts.OnOCRProgress(page, done, total)
		}
		if col.add(page, text) {
			break
		}
	}
	return nil
}

func (r *run) ocrPage(ctx context.Context, page int) (string, error) {
	if t, ok := r.ocrCache[page]; ok {
		return t, nil
	}
	img, err := r.doc.RenderPNG(page, r.opts.OCRScale)
	if err != nil {
		return "", err
	}
	text, err := r.opts.OCR.Recognize(ctx, img, r.opts.OCRLang)
	if err != nil {
		return "", err
	}
	r.ocrCache[page] = text
	return text, nil
}

// collector accumulates collapsed page text under a rune budget.
type collector struct {
	parts []string
	runes int
	max   int
	pages []int
}

func newCollector(max int) *collector { return &collector{max: max} }

// add folds one page's text in and reports whether the budget is met.
// Pages whose text collapses to nothing are not recorded as contributing.
func (c *collector) add(page int, text string) bool {
	t := collapseSpace(text)
	if t == "" {
		return c.runes >= c.max
	}
	room := c.max - c.runes
	if len(c.parts) > 0 {
		room-- // joining space
	}
	if room <= 0 {
		return true
	}
	if r := []rune(t); len(r) > room {
		t = string(r[:room])
	}
	c.pages = append(c.pages, page)
	c.parts = append(c.parts, t)
	c.runes += len([]rune(t))
	if len(c.parts) > 1 {
		c.runes++
	}
	return c.runes >= c.max
}

// take returns the joined text and the contributing pages.
func (c *collector) take() (string, []int) {
	return strings.Join(c.parts, " "), c.pages
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizePages dedupes, bounds to [1, totalPages], and sorts ascending.
func normalizePages(pages []int, totalPages int) []int {
	seen := map[int]bool{}
	var out []int
	for _, p := range pages {
		if p < 1 || p > totalPages || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func rangePages(cr chapters.ChapterRange, totalPages int) []int {
	start, end := cr.PageStart, cr.PageEnd
	if start < 1 {
		start = 1
	}
	if end > totalPages {
		end = totalPages
	}
	var pages []int
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
