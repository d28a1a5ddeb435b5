package chapters

import "github.com/studyforge/pdfchapters/internal/pdfdoc"

// OutlineSource is the slice of the document handle the outline extractor
// needs.
type OutlineSource interface {
	TotalPages() int
	Outline() []pdfdoc.OutlineNode
	ResolveDest(pdfdoc.Dest) (int, bool)
}

type flatNode struct {
	title string
	dest  pdfdoc.Dest
	depth int
}

// flattenOutline walks the tree depth-first into an ordered sequence.
func flattenOutline(nodes []pdfdoc.OutlineNode, depth int, out []flatNode) []flatNode {
	for _, n := range nodes {
		out = append(out, flatNode{title: n.Title, dest: n.Dest, depth: depth})
		out = flattenOutline(n.Children, depth+1, out)
	}
	return out
}

// FromOutline derives chapter boundary candidates from the document's
// embedded navigation outline. It returns nil when the outline is absent or
// too shallow to establish range boundaries: a single detected chapter
// start cannot bound anything.
func FromOutline(doc OutlineSource, vocab *Vocabulary) []TocEntry {
	if vocab == nil {
		vocab = DefaultVocabulary
	}
	total := doc.TotalPages()
	flat := flattenOutline(doc.Outline(), 0, nil)
	if len(flat) == 0 {
		return nil
	}

	type candidate struct {
		entry       TocEntry
		chapterLike bool
	}
	var resolved []candidate
	for _, n := range flat {
		title := SanitizeTitle(n.title)
		page, ok := doc.ResolveDest(n.dest)
		if !ok || page < 1 || page > total {
			continue
		}
		resolved = append(resolved, candidate{
			entry:       TocEntry{Title: title, PageStart: page, Depth: n.depth},
			chapterLike: vocab.IsChapterLike(title),
		})
	}

	pick := func(keep func(candidate) bool) []TocEntry {
		var out []TocEntry
		for _, c := range resolved {
			if keep(c) {
				out = append(out, c.entry)
			}
		}
		return out
	}

	// Prefer chapter-like top-level entries, then any chapter-like entry,
	// then the raw top level.
	selected := pick(func(c candidate) bool { return c.entry.Depth == 0 && c.chapterLike })
	if len(selected) < 2 {
		selected = pick(func(c candidate) bool { return c.chapterLike })
	}
	if len(selected) < 2 {
		selected = pick(func(c candidate) bool { return c.entry.Depth == 0 })
	}
	if len(selected) < 2 {
		return nil
	}
	return selected
}
