package chapters

import (
	"testing"

	"github.com/studyforge/pdfchapters/internal/pdfdoc"
)

// fakeOutlineDoc implements OutlineSource over a hand-built tree.
type fakeOutlineDoc struct {
	total   int
	outline []pdfdoc.OutlineNode
}

func (f *fakeOutlineDoc) TotalPages() int               { return f.total }
func (f *fakeOutlineDoc) Outline() []pdfdoc.OutlineNode { return f.outline }
func (f *fakeOutlineDoc) ResolveDest(d pdfdoc.Dest) (int, bool) {
	page, ok := d.Target()
	if !ok || page > f.total {
		return 0, false
	}
	return page, true
}

func node(title string, page int, children ...pdfdoc.OutlineNode) pdfdoc.OutlineNode {
	return pdfdoc.OutlineNode{Title: title, Dest: pdfdoc.DestForPage(page), Children: children}
}

func TestFromOutlinePrefersChapterLikeTopLevel(t *testing.T) {
	doc := &fakeOutlineDoc{
		total: 100,
		outline: []pdfdoc.OutlineNode{
			node("Preface", 3),
			node("Chapter 1: Foundations", 10,
				node("1.1 History", 11),
				node("1.2 Notation", 15),
			),
			node("Chapter 2: Graphs", 30,
				node("2.1 Paths", 32),
			),
			node("Index", 95),
		},
	}
	entries := FromOutline(doc, nil)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Title != "Chapter 1: Foundations" || entries[0].PageStart != 10 || entries[0].Depth != 0 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].PageStart != 30 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestFromOutlineFallsBackToAnyDepthChapterLike(t *testing.T) {
	// Only one chapter-like entry at the top: the policy falls down to
	// chapter-like entries at any depth.
	doc := &fakeOutlineDoc{
		total: 60,
		outline: []pdfdoc.OutlineNode{
			node("The Book", 1,
				node("Chapter 1 Basics", 5),
				node("Chapter 2 Beyond", 25),
			),
		},
	}
	entries := FromOutline(doc, nil)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Depth != 1 || entries[1].Depth != 1 {
		t.Errorf("expected depth-1 entries, got %+v", entries)
	}
}

func TestFromOutlineFallsBackToTopLevel(t *testing.T) {
	// Nothing chapter-like anywhere: take the top level as-is.
	doc := &fakeOutlineDoc{
		total: 40,
		outline: []pdfdoc.OutlineNode{
			node("Beginnings", 1),
			node("Middles", 15),
			node("Endings", 30),
		},
	}
	entries := FromOutline(doc, nil)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
}

func TestFromOutlineTooShallow(t *testing.T) {
	doc := &fakeOutlineDoc{
		total:   40,
		outline: []pdfdoc.OutlineNode{node("Chapter 1 Everything", 1)},
	}
	if entries := FromOutline(doc, nil); entries != nil {
		t.Errorf("single boundary must yield nothing, got %+v", entries)
	}
	empty := &fakeOutlineDoc{total: 40}
	if entries := FromOutline(empty, nil); entries != nil {
		t.Errorf("absent outline must yield nothing, got %+v", entries)
	}
}

func TestFromOutlineDropsUnresolvableDestinations(t *testing.T) {
	doc := &fakeOutlineDoc{
		total: 20,
		outline: []pdfdoc.OutlineNode{
			node("Chapter 1 Real", 2),
			{Title: "Chapter 2 External Link"}, // zero Dest: no internal target
			node("Chapter 3 Out of Bounds", 99),
			node("Chapter 4 Real", 12),
		},
	}
	entries := FromOutline(doc, nil)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].PageStart != 2 || entries[1].PageStart != 12 {
		t.Errorf("unexpected pages: %+v", entries)
	}
}
