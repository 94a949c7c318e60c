package organizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeShortContent(t *testing.T) {
	got := Summarize("learned the chain rule")
	if got != "summary: learned the chain rule" {
		t.Errorf("Summarize = %q", got)
	}
}

func TestSummarizeTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("integration by parts ", 10)
	got := Summarize(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if len(got) > len("summary: ")+summaryLimit+3 {
		t.Errorf("summary too long: %d chars", len(got))
	}
}

func TestSummarizeTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("微積分的基本定理", 20)
	got := Summarize(long)
	if !utf8.ValidString(got) {
		t.Errorf("summary contains invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n > len("summary: ")+summaryLimit+3 {
		t.Errorf("summary too long: %d runes", n)
	}
}

func TestStructureMainPointsFromBlocks(t *testing.T) {
	note := "# Derivatives\nproduct rule and chain rule\n\nquotient rule needs practice\n\n# Integrals\nsubstitution first"
	got := Structure(note)

	want := []string{"Derivatives", "quotient rule needs practice", "Integrals"}
	if len(got.MainPoints) != len(want) {
		t.Fatalf("MainPoints = %v, want %v", got.MainPoints, want)
	}
	for i := range want {
		if got.MainPoints[i] != want[i] {
			t.Errorf("MainPoints[%d] = %q, want %q", i, got.MainPoints[i], want[i])
		}
	}
}

func TestStructureKeywordsByFrequency(t *testing.T) {
	note := "limits limits limits derivative derivative rule"
	got := Structure(note)
	if len(got.Keywords) == 0 || got.Keywords[0] != "limits" {
		t.Errorf("Keywords = %v, want limits first", got.Keywords)
	}
}

func TestStructureEmpty(t *testing.T) {
	got := Structure("")
	if len(got.MainPoints) != 0 || len(got.Keywords) != 0 {
		t.Errorf("Structure(\"\") = %+v, want empty", got)
	}
}

func TestReformatBulletPoints(t *testing.T) {
	got := Reformat("first line\nsecond line", "bullet_points")
	want := "- first line\n- second line"
	if got != want {
		t.Errorf("Reformat = %q, want %q", got, want)
	}
}

func TestReformatMindMapKeywords(t *testing.T) {
	got := Reformat("derivatives derivatives integrals", "mind_map_keywords")
	if !strings.HasPrefix(got, "keywords: ") {
		t.Errorf("Reformat = %q", got)
	}
	if !strings.Contains(got, "derivatives") {
		t.Errorf("expected most frequent word in %q", got)
	}
}

func TestReformatUnknownFormatUnchanged(t *testing.T) {
	content := "leave me alone"
	if got := Reformat(content, "haiku"); got != content {
		t.Errorf("Reformat = %q, want unchanged", got)
	}
}
