package chapters

import (
	"strings"
	"testing"
)

func TestParseRangeInputExplicit(t *testing.T) {
	sels, err := ParseRangeInput("1:1-12, 2:13-24", 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sels) != 2 {
		t.Fatalf("got %d selections, want 2", len(sels))
	}
	if sels[0] != (Selection{Number: 1, PageStart: 1, PageEnd: 12}) {
		t.Errorf("unexpected first selection: %+v", sels[0])
	}
	if sels[1] != (Selection{Number: 2, PageStart: 13, PageEnd: 24}) {
		t.Errorf("unexpected second selection: %+v", sels[1])
	}
}

func TestParseRangeInputBareAndMixedSeparators(t *testing.T) {
	sels, err := ParseRangeInput("1-10\n11-20; 3:21-30", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sels) != 3 {
		t.Fatalf("got %d selections, want 3", len(sels))
	}
	// Bare ranges number sequentially; the explicit 3 is preserved.
	if sels[0].Number != 1 || sels[1].Number != 2 || sels[2].Number != 3 {
		t.Errorf("unexpected numbering: %+v", sels)
	}
}

func TestParseRangeInputKoreanSuffix(t *testing.T) {
	sels, err := ParseRangeInput("1장:1-8, 2장: 9-15", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sels) != 2 || sels[1].Number != 2 || sels[1].PageStart != 9 {
		t.Errorf("unexpected selections: %+v", sels)
	}
}

func TestParseRangeInputDuplicateNumber(t *testing.T) {
	_, err := ParseRangeInput("1:1-12, 1:13-24", 24)
	if err == nil {
		t.Fatal("expected error for duplicate chapter number")
	}
	if !strings.Contains(err.Error(), "1") {
		t.Errorf("error must mention the duplicate number: %v", err)
	}
}

func TestParseRangeInputOverlap(t *testing.T) {
	_, err := ParseRangeInput("1:1-12, 2:10-24", 24)
	if err == nil {
		t.Fatal("expected error for overlapping pages")
	}
	if !strings.Contains(err.Error(), "10") {
		t.Errorf("error must mention the contested page: %v", err)
	}
}

func TestParseRangeInputRejectsAtomically(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"1:5-2",          // inverted
		"1:0-4",          // pages start at 1
		"1:1-10, 2:9999", // malformed second token
		"1:1-99",         // past the last page
	}
	for _, in := range cases {
		if sels, err := ParseRangeInput(in, 24); err == nil {
			t.Errorf("ParseRangeInput(%q) = %+v, want error", in, sels)
		}
	}
}
