package govlens

import (
	"regexp"
	"strings"
)

// OutlineEntry is a heading in a proposal body.
type OutlineEntry struct {
	// Level is the heading depth, 1 through 6.
	Level int `json:"level"`

	// Title is the heading text.
	Title string `json:"title"`
}

var (
	outlineHeadingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	outlineFenceRe   = regexp.MustCompile("(?s)```.*?```")
)

// Outline parses a markdown proposal body and returns its headings in
// document order. Fenced code blocks are skipped so # inside code does
// not produce entries.
func Outline(markdown string) []OutlineEntry {
	if markdown == "" {
		return nil
	}

	cleaned := outlineFenceRe.ReplaceAllString(markdown, "")
	matches := outlineHeadingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]OutlineEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, OutlineEntry{
			Level: len(m[1]),
			Title: strings.TrimSpace(m[2]),
		})
	}

	return entries
}
