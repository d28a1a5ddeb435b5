// Package export writes extracted chapter text as a Markdown study-material
// tree: one file per chapter range plus an index.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/studyforge/pdfchapters/internal/extract"
)

// Options tunes the Markdown tree layout.
type Options struct {
	// OutDir is the directory the files are written into; it is created
	// when missing. Empty means the current directory.
	OutDir string
	// SlugPrefix is prepended to every chapter file's slug.
	SlugPrefix string
}

// WriteMarkdown writes one Markdown file per chapter plus an index.md and
// returns the paths written, index last.
func WriteMarkdown(res extract.RangesResult, opts Options) ([]string, error) {
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}

	var paths []string
	type indexEntry struct {
		title, file string
		pages       [2]int
	}
	var index []indexEntry
	for _, ch := range res.Chapters {
		if ch.Title == "" {
			ch.Title = fmt.Sprintf("Chapter %d", ch.Number)
		}
		slug := Slugify(fmt.Sprintf("%d-%s", ch.Number, ch.Title))
		if opts.SlugPrefix != "" {
			slug = Slugify(opts.SlugPrefix + "-" + slug)
		}
		name := slug + ".md"
		path := filepath.Join(opts.OutDir, name)
		if err := os.WriteFile(path, []byte(chapterMarkdown(ch)), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
		index = append(index, indexEntry{title: ch.Title, file: name, pages: [2]int{ch.PageStart, ch.PageEnd}})
	}

	var b strings.Builder
	b.WriteString("# Contents\n\n")
	for _, e := range index {
		fmt.Fprintf(&b, "- [%s](./%s) — pages %d–%d\n", e.title, e.file, e.pages[0], e.pages[1])
	}
	indexPath := filepath.Join(opts.OutDir, "index.md")
	if err := os.WriteFile(indexPath, []byte(b.String()), 0o644); err != nil {
		return nil, err
	}
	return append(paths, indexPath), nil
}

func chapterMarkdown(ch extract.RangeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: %q\npages: \"%d-%d\"\n---\n\n", ch.Title, ch.PageStart, ch.PageEnd)
	fmt.Fprintf(&b, "# %s\n\n", ch.Title)
	if ch.Text == "" {
		b.WriteString("_No extractable text on these pages._\n")
		return b.String()
	}
	if ch.OCRUsed() {
		b.WriteString("> Text recovered via OCR.\n\n")
	}
	b.WriteString(ch.Text)
	b.WriteString("\n")
	return b.String()
}

var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)

// Slugify lowercases and reduces a title to a filesystem-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
