// Package organizer turns raw note text into summaries, structured outlines
// and reformatted content. The summarization here is a deterministic stand-in
// for an AI model: it derives its output from the note text alone.
package organizer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/clwei/studyflow/internal/model"
)

const (
	summaryLimit  = 80
	maxMainPoints = 5
	maxKeywords   = 5
	minWordLen    = 4
)

// Structured is the outline extracted from a note.
type Structured struct {
	MainPoints []string `json:"main_points"`
	Keywords   []string `json:"keywords"`
}

// Summarize returns a short summary of the note content. Placeholder for a
// real model: truncates to the first summaryLimit runes, so multi-byte text
// is never cut mid-character.
func Summarize(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= summaryLimit {
		return "summary: " + content
	}
	runes := []rune(content)
	return "summary: " + string(runes[:summaryLimit]) + "..."
}

// Structure extracts main points and keywords from a note. Main points are
// the leading line of each text block; keywords are the most frequent words
// of at least minWordLen characters.
func Structure(content string) Structured {
	blocks := splitBlocks(content)

	s := Structured{}
	for _, b := range blocks {
		if len(s.MainPoints) == maxMainPoints {
			break
		}
		line := b
		if i := strings.IndexByte(b, '\n'); i >= 0 {
			line = b[:i]
		}
		s.MainPoints = append(s.MainPoints, strings.TrimSpace(strings.TrimLeft(line, "# ")))
	}
	s.Keywords = keywords(content, maxKeywords)
	return s
}

// Reformat rewrites note content according to a preferred note format.
// Unknown formats return the content unchanged.
func Reformat(content, format string) string {
	switch format {
	case model.FormatBulletPoints:
		lines := strings.Split(strings.TrimSpace(content), "\n")
		for i, l := range lines {
			lines[i] = "- " + strings.TrimSpace(l)
		}
		return strings.Join(lines, "\n")
	case model.FormatMindMapKeywords:
		kw := Structure(content).Keywords
		if len(kw) == 0 {
			return "keywords: none"
		}
		return "keywords: " + strings.Join(kw, ", ")
	}
	return content
}

// splitBlocks splits note text into sections on heading lines and blank
// lines.
func splitBlocks(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		if b := strings.TrimSpace(strings.Join(current, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if strings.HasPrefix(trimmed, "#") && len(current) > 0 {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// keywords returns the top n words by frequency, ties broken alphabetically.
func keywords(text string, n int) []string {
	counts := map[string]int{}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r < 0x80
	})
	for _, w := range words {
		if len(w) >= minWordLen {
			counts[w]++
		}
	}

	ranked := make([]string, 0, len(counts))
	for w := range counts {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
