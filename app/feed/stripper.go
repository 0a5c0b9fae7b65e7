package feed

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

type Stripper struct{}

func NewStripper() *Stripper {
	return &Stripper{}
}

// Run removes every angle-bracket-delimited tag from text and trims the
// result. Entities are left exactly as they appear; only the summary field
// is produced this way, content fields keep their markup.
func (s *Stripper) Run(text string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(text, ""))
}
