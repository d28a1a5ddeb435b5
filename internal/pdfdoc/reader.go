package pdfdoc

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// Reader is the production document handle. MuPDF supplies the page count,
// the resolved outline, the permissive text reading, and rasterization; the
// pure-Go parser supplies positioned fragments and the two strict text
// readings. The pure-Go side is best effort: when it cannot parse the file,
// its readings yield nothing and the MuPDF reading covers for them.
type Reader struct {
	fz    *fitz.Document
	ld    *pdf.Reader
	pages int
}

// Open parses data with both engines. It fails only when MuPDF rejects the
// document; pure-Go parse failures (including panics, which that parser is
// known to raise on malformed files) degrade silently.
func Open(data []byte) (*Reader, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDocumentLoad)
	}
	fz, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	r := &Reader{fz: fz, pages: fz.NumPage()}
	r.ld = openPureGo(data)
	return r, nil
}

func openPureGo(data []byte) (r *pdf.Reader) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	return r
}

// Close releases the underlying engine resources.
func (r *Reader) Close() error {
	if r.fz == nil {
		return nil
	}
	err := r.fz.Close()
	r.fz = nil
	return err
}

// TotalPages reports the page count.
func (r *Reader) TotalPages() int { return r.pages }

// Outline returns the document's navigation outline as a nested tree, or
// nil when the document carries none. Named destinations have already been
// dereferenced; entries without an internal page target carry a zero Dest.
func (r *Reader) Outline() []OutlineNode {
	toc, err := r.fz.ToC()
	if err != nil || len(toc) == 0 {
		return nil
	}
	nodes, _ := nestOutline(toc, 0, 1)
	return nodes
}

// nestOutline rebuilds the tree from MuPDF's flat, level-annotated list.
// It returns the nodes at the given level and the index it stopped at.
func nestOutline(flat []fitz.Outline, i, level int) ([]OutlineNode, int) {
	var nodes []OutlineNode
	for i < len(flat) {
		o := flat[i]
		if o.Level < level {
			break
		}
		if o.Level > level {
			// Malformed jump deeper than one level; attach to the
			// previous node when there is one, otherwise flatten.
			if len(nodes) == 0 {
				nodes = append(nodes, OutlineNode{Title: o.Title, Dest: destFor(o)})
				i++
				continue
			}
			var children []OutlineNode
			children, i = nestOutline(flat, i, o.Level)
			nodes[len(nodes)-1].Children = append(nodes[len(nodes)-1].Children, children...)
			continue
		}
		node := OutlineNode{Title: o.Title, Dest: destFor(o)}
		i++
		if i < len(flat) && flat[i].Level > level {
			node.Children, i = nestOutline(flat, i, flat[i].Level)
		}
		nodes = append(nodes, node)
	}
	return nodes, i
}

func destFor(o fitz.Outline) Dest {
	if o.Page < 0 {
		return Dest{}
	}
	return Dest{page: o.Page + 1}
}

// ResolveDest maps a destination to its 1-based page number. It reports
// false for destinations without an internal target or outside the
// document's bounds.
func (r *Reader) ResolveDest(d Dest) (int, bool) {
	if d.page < 1 || d.page > r.pages {
		return 0, false
	}
	return d.page, true
}

// DestForPage builds a destination pointing at a 1-based page. Exposed for
// callers assembling synthetic outlines (tests, manual overrides).
func DestForPage(page int) Dest { return Dest{page: page} }

// TextFragments returns the positioned text runs of a 1-based page, with
// LineBreak set on the last fragment of each visual row. When the pure-Go
// parser has no usable content for the page, lines from the MuPDF reading
// are surfaced as one fragment per line.
func (r *Reader) TextFragments(page int) ([]Fragment, error) {
	if page < 1 || page > r.pages {
		return nil, fmt.Errorf("pdfdoc: page %d out of range 1..%d", page, r.pages)
	}
	if frags := r.pureGoFragments(page); len(frags) > 0 {
		return frags, nil
	}
	text, err := r.fz.Text(page - 1)
	if err != nil {
		return nil, err
	}
	var frags []Fragment
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		frags = append(frags, Fragment{Text: line, LineBreak: true})
	}
	return frags, nil
}

func (r *Reader) pureGoFragments(page int) (frags []Fragment) {
	defer func() {
		if rec := recover(); rec != nil {
			frags = nil
		}
	}()
	if r.ld == nil {
		return nil
	}
	p := r.ld.Page(page)
	if p.V.IsNull() {
		return nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}
	for _, row := range rows {
		for i, t := range row.Content {
			frags = append(frags, Fragment{
				Text:      t.S,
				X:         t.X,
				Y:         t.Y,
				LineBreak: i == len(row.Content)-1,
			})
		}
	}
	return frags
}

// PageText extracts the text of a 1-based page under one reading mode. An
// empty string with a nil error means the mode found no text; callers move
// on to the next mode.
func (r *Reader) PageText(page int, mode TextMode) (string, error) {
	if page < 1 || page > r.pages {
		return "", fmt.Errorf("pdfdoc: page %d out of range 1..%d", page, r.pages)
	}
	switch mode {
	case TextRows:
		return r.pureGoRowText(page), nil
	case TextPlain:
		return r.pureGoPlainText(page), nil
	case TextStructured:
		text, err := r.fz.Text(page - 1)
		if err != nil {
			return "", err
		}
		return text, nil
	}
	return "", fmt.Errorf("pdfdoc: unknown text mode %d", mode)
}

func (r *Reader) pureGoRowText(page int) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
		}
	}()
	if r.ld == nil {
		return ""
	}
	p := r.ld.Page(page)
	if p.V.IsNull() {
		return ""
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, row := range rows {
		for i, t := range row.Content {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.S)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Reader) pureGoPlainText(page int) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
		}
	}()
	if r.ld == nil {
		return ""
	}
	p := r.ld.Page(page)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// RenderPNG rasterizes a 1-based page at scale times 72 DPI and encodes it
// as PNG. Only the OCR fallback needs this.
func (r *Reader) RenderPNG(page int, scale float64) ([]byte, error) {
	if page < 1 || page > r.pages {
		return nil, fmt.Errorf("pdfdoc: page %d out of range 1..%d", page, r.pages)
	}
	if scale <= 0 {
		scale = 2
	}
	img, err := r.fz.ImageDPI(page-1, 72*scale)
	if err != nil {
		return nil, fmt.Errorf("pdfdoc: render page %d: %w", page, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("pdfdoc: encode page %d: %w", page, err)
	}
	return buf.Bytes(), nil
}
