package chapters

import (
	"fmt"
	"sort"
)

// BuildRanges merges boundary candidates into ordered, non-overlapping,
// page-complete chapter ranges. Entries are sanitized, sorted by
// (PageStart, Depth), deduplicated per start page (first after sort wins,
// lower depth first), and bounded by totalPages; each range ends where the
// next begins, the last at totalPages. Numbers are reassigned 1..N in page
// order: numbering inferred from titles is a display hint only. Fewer than
// two surviving entries yield nil, since a single boundary cannot form a
// range.
func BuildRanges(entries []TocEntry, totalPages int) []ChapterRange {
	if totalPages < 1 {
		return nil
	}

	valid := make([]TocEntry, 0, len(entries))
	for _, e := range entries {
		e.Title = SanitizeTitle(e.Title)
		if e.PageStart < 1 || e.PageStart > totalPages {
			continue
		}
		valid = append(valid, e)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].PageStart != valid[j].PageStart {
			return valid[i].PageStart < valid[j].PageStart
		}
		return valid[i].Depth < valid[j].Depth
	})

	deduped := valid[:0]
	for _, e := range valid {
		if len(deduped) > 0 && deduped[len(deduped)-1].PageStart == e.PageStart {
			continue
		}
		deduped = append(deduped, e)
	}

	if len(deduped) < 2 {
		return nil
	}

	ranges := make([]ChapterRange, 0, len(deduped))
	for i, e := range deduped {
		end := totalPages
		if i < len(deduped)-1 {
			end = deduped[i+1].PageStart - 1
		}
		if end < e.PageStart {
			continue
		}
		n := len(ranges) + 1
		ranges = append(ranges, ChapterRange{
			ID:        fmt.Sprintf("chapter-%d", n),
			Number:    n,
			Title:     e.Title,
			PageStart: e.PageStart,
			PageEnd:   end,
		})
	}
	if len(ranges) == 0 {
		return nil
	}
	return ranges
}
