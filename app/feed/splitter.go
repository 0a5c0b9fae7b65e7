package feed

import (
	"regexp"
	"strings"
)

// Matches the first complete paragraph element, tags included. Non-greedy,
// so nested markup inside the paragraph is kept intact and everything after
// the first closing tag is treated as bulk remainder.
var paragraphRe = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>.*?</p\s*>`)

var blankLinesRe = regexp.MustCompile(`\n{2,}`)

type Splitter struct{}

func NewSplitter() *Splitter {
	return &Splitter{}
}

// Run splits text at the boundary of the first paragraph and returns it
// together with the remainder. Markup-delimited paragraphs (<p>...</p>) take
// precedence; plain text falls back to blank-line separation. When no
// boundary exists the whole text is the first paragraph and the remainder is
// empty. Empty or whitespace-only input is returned untouched.
func (s *Splitter) Run(text string) (string, string) {
	if strings.TrimSpace(text) == "" {
		return text, ""
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	if loc := paragraphRe.FindStringIndex(normalized); loc != nil {
		first := strings.TrimSpace(normalized[loc[0]:loc[1]])
		second := strings.TrimSpace(normalized[loc[1]:])
		return first, second
	}

	parts := blankLinesRe.Split(normalized, -1)
	if len(parts) >= 2 {
		first := strings.TrimSpace(parts[0])
		second := strings.TrimSpace(strings.Join(parts[1:], "\n\n"))
		return first, second
	}

	return strings.TrimSpace(normalized), ""
}
