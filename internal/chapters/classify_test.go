package chapters

import "testing"

func TestIsChapterLike(t *testing.T) {
	v := DefaultVocabulary
	cases := []struct {
		title string
		want  bool
	}{
		{"Chapter 3: Graphs", true},
		{"chapter 12", true},
		{"Chap. 4 Trees", true},
		{"Ch 2 Sorting", true},
		{"Part 2: Foundations", true},
		{"Unit 5 Algebra", true},
		{"제3장 그래프", true},
		{"제 10 장 확률", true},
		{"2장 자료구조", true},
		{"3. Linear Algebra", true},
		{"12) Probability", true},
		{"IV - Dynamic Programming", true},
		{"XIV. Appendices of the Mind", true}, // numbered heading, not the appendix vocab
		{"ab", false},                         // too short after sanitize
		{"Appendix A", false},
		{"Appendix", false},
		{"References", false},
		{"Bibliography", false},
		{"Index", false},
		{"Preface", false},
		{"Foreword", false},
		{"Section 2.1", false},
		{"Contents", false},
		{"부록 A", false},
		{"참고문헌", false},
		{"찾아보기", false},
		{"머리말", false},
		{"제2절 개요", false},
		{"Total Revenue", false},
		{"Introduction", false}, // no number, no keyword
		{"3.14 is pi", false},   // separator then digit, not a letter
	}
	for _, c := range cases {
		if got := v.IsChapterLike(c.title); got != c.want {
			t.Errorf("IsChapterLike(%q) = %v, want %v", c.title, got, c.want)
		}
	}
}

func TestMatchesChapterKeyword(t *testing.T) {
	v := DefaultVocabulary
	if !v.MatchesChapterKeyword("Chapter 7 Advanced Topics") {
		t.Error("explicit chapter marker should match")
	}
	if v.MatchesChapterKeyword("3. Linear Algebra") {
		t.Error("bare numbered heading must not satisfy the keyword-only check")
	}
	if v.MatchesChapterKeyword("Appendix 2") {
		t.Error("structural vocabulary must stay rejected")
	}
}

func TestInferChapterNumber(t *testing.T) {
	v := DefaultVocabulary
	cases := []struct {
		title    string
		fallback int
		want     int
	}{
		{"Chapter 3: Graphs", 0, 3},
		{"제5장 트리", 0, 5},
		{"7장 힙", 0, 7},
		{"12. Linear Algebra", 0, 12},
		{"IV - Dynamic Programming", 0, 4},
		{"Chapter XIV", 0, 14},
		{"Introduction", 9, 9},
		{"", 2, 2},
	}
	for _, c := range cases {
		if got := v.InferChapterNumber(c.title, c.fallback); got != c.want {
			t.Errorf("InferChapterNumber(%q, %d) = %d, want %d", c.title, c.fallback, got, c.want)
		}
	}
}
