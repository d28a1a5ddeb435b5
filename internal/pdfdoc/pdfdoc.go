// Package pdfdoc adapts PDF engines behind a small document-handle surface:
// page count, outline tree with resolvable destinations, per-page text under
// a fixed set of reading modes, and page rasterization for OCR.
//
// A Reader is not safe for concurrent use. Callers that need parallelism
// open one Reader per goroutine from the same bytes.
package pdfdoc

import "errors"

// ErrDocumentLoad marks an unreadable or malformed document. Wrapped errors
// from Open satisfy errors.Is(err, ErrDocumentLoad).
var ErrDocumentLoad = errors.New("pdfdoc: document load failed")

// Fragment is one inline run of text on a page. LineBreak marks the end of
// a visual line; consumers join fragments between breaks to reconstruct the
// lines a reader would see.
type Fragment struct {
	Text      string
	X, Y      float64
	LineBreak bool
}

// Dest is an outline destination after the engine has dereferenced any
// named destination to a concrete location. The zero Dest resolves to
// nothing.
type Dest struct {
	page int // 1-based target page, 0 when there is no internal target
}

// Target returns the destination's internal page target, if any, without
// bounds checking. Document implementations resolve it against their own
// page count.
func (d Dest) Target() (int, bool) {
	if d.page < 1 {
		return 0, false
	}
	return d.page, true
}

// OutlineNode is one entry of the document's navigation outline.
type OutlineNode struct {
	Title    string
	Dest     Dest
	Children []OutlineNode
}

// TextMode selects one content-reading configuration. Modes are ordered
// from strict to permissive; extraction walks them until one yields text.
type TextMode int

const (
	// TextRows reconstructs lines from positioned fragments row by row.
	TextRows TextMode = iota
	// TextPlain is the engine's combined plain-text reading.
	TextPlain
	// TextStructured is the MuPDF reading, which tolerates malformed
	// content streams and includes marked/tagged content.
	TextStructured
)

// TextModes is the fixed attempt order for per-page extraction.
var TextModes = []TextMode{TextRows, TextPlain, TextStructured}

func (m TextMode) String() string {
	switch m {
	case TextRows:
		return "rows"
	case TextPlain:
		return "plain"
	case TextStructured:
		return "structured"
	}
	return "unknown"
}
