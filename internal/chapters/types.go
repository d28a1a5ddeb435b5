package chapters

// TocEntry is a chapter boundary candidate produced by either extractor:
// a sanitized title and the 1-based page it starts on. Depth is the outline
// nesting level (0 for top-level); TOC-page-scanned entries are flat.
type TocEntry struct {
	Title     string `json:"title"`
	PageStart int    `json:"page_start"`
	Depth     int    `json:"depth"`
}

// ChapterRange is a contiguous, non-overlapping span of pages. Number is
// 1-based and dense, assigned in ascending PageStart order by the range
// builder regardless of any numbering inferred from titles.
type ChapterRange struct {
	ID        string `json:"id"`
	Number    int    `json:"chapter_number"`
	Title     string `json:"chapter_title"`
	PageStart int    `json:"page_start"`
	PageEnd   int    `json:"page_end"`
}

// Selection is a user-supplied chapter range override parsed from free
// text. Unlike ChapterRange it carries the number the user assigned.
type Selection struct {
	Number    int `json:"chapter_number"`
	PageStart int `json:"page_start"`
	PageEnd   int `json:"page_end"`
}

// Source identifies which strategy produced a set of chapter ranges.
type Source string

const (
	SourceOutline  Source = "outline"
	SourceTOCPages Source = "toc_pages"
	SourceNone     Source = ""
)

// DetectResult is the outcome of automatic chapter detection. Structural
// absence (no outline, no TOC pattern) is an empty Chapters slice with
// SourceNone, not an error.
type DetectResult struct {
	Chapters   []ChapterRange `json:"chapters"`
	TotalPages int            `json:"total_pages"`
	Source     Source         `json:"source"`
}
