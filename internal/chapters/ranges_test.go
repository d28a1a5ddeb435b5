package chapters

import (
	"reflect"
	"testing"
)

func TestBuildRangesBasic(t *testing.T) {
	entries := []TocEntry{
		{Title: "Ch1", PageStart: 1},
		{Title: "Ch2", PageStart: 10},
		{Title: "Ch3", PageStart: 25},
	}
	got := BuildRanges(entries, 30)
	want := []ChapterRange{
		{ID: "chapter-1", Number: 1, Title: "Ch1", PageStart: 1, PageEnd: 9},
		{ID: "chapter-2", Number: 2, Title: "Ch2", PageStart: 10, PageEnd: 24},
		{ID: "chapter-3", Number: 3, Title: "Ch3", PageStart: 25, PageEnd: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestBuildRangesSortsAndDedupes(t *testing.T) {
	entries := []TocEntry{
		{Title: "Later", PageStart: 40},
		{Title: "Deep duplicate", PageStart: 12, Depth: 2},
		{Title: "First", PageStart: 12, Depth: 0},
		{Title: "Out of bounds", PageStart: 300},
		{Title: "Bad page", PageStart: 0},
	}
	got := BuildRanges(entries, 100)
	if len(got) != 2 {
		t.Fatalf("got %d ranges, want 2: %+v", len(got), got)
	}
	// Lower depth wins the shared start page.
	if got[0].Title != "First" || got[0].PageStart != 12 || got[0].PageEnd != 39 {
		t.Errorf("unexpected first range: %+v", got[0])
	}
	if got[1].PageStart != 40 || got[1].PageEnd != 100 {
		t.Errorf("unexpected last range: %+v", got[1])
	}
}

func TestBuildRangesProperties(t *testing.T) {
	entries := []TocEntry{
		{Title: "C", PageStart: 51, Depth: 1},
		{Title: "A", PageStart: 1},
		{Title: "B", PageStart: 17},
		{Title: "D", PageStart: 80},
	}
	const total = 92
	got := BuildRanges(entries, total)
	if len(got) == 0 {
		t.Fatal("expected ranges")
	}
	for i, r := range got {
		if r.Number != i+1 {
			t.Errorf("numbering must be dense 1..N: %+v", r)
		}
		if r.PageStart > r.PageEnd {
			t.Errorf("inverted range: %+v", r)
		}
		if i > 0 && got[i-1].PageEnd+1 != r.PageStart {
			t.Errorf("ranges must be contiguous: %+v then %+v", got[i-1], r)
		}
	}
	if got[len(got)-1].PageEnd != total {
		t.Errorf("last range must end at total pages, got %+v", got[len(got)-1])
	}
}

func TestBuildRangesIdempotent(t *testing.T) {
	entries := []TocEntry{
		{Title: "A", PageStart: 1},
		{Title: "B", PageStart: 9},
	}
	first := BuildRanges(entries, 20)
	second := BuildRanges(entries, 20)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildRanges not deterministic: %+v vs %+v", first, second)
	}
}

func TestBuildRangesTooFewBoundaries(t *testing.T) {
	if got := BuildRanges(nil, 10); got != nil {
		t.Errorf("no entries must yield nil, got %+v", got)
	}
	if got := BuildRanges([]TocEntry{{Title: "Only", PageStart: 3}}, 10); got != nil {
		t.Errorf("single entry must yield nil, got %+v", got)
	}
	// Two entries collapsing onto one start page leave one boundary.
	dup := []TocEntry{{Title: "X", PageStart: 5}, {Title: "Y", PageStart: 5, Depth: 1}}
	if got := BuildRanges(dup, 10); got != nil {
		t.Errorf("deduped single boundary must yield nil, got %+v", got)
	}
}
