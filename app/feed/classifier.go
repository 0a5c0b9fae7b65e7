package feed

import (
	"regexp"
	"strings"
)

type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeHTML  ContentType = "html"
	ContentTypeXHTML ContentType = "xhtml"
)

var (
	// A remainder wrapped entirely in a single div element is treated as an
	// XHTML fragment rather than loose HTML.
	xhtmlWrapperRe = regexp.MustCompile(`(?is)^<div(?:\s[^>]*)?>.*</div>$`)
	markupRe       = regexp.MustCompile(`<[A-Za-z]`)
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Run reports the markup flavor of text: xhtml when the whole (trimmed)
// string is one div element, html when any tag-like markup appears, text
// otherwise.
func (c *Classifier) Run(text string) ContentType {
	trimmed := strings.TrimSpace(text)

	if xhtmlWrapperRe.MatchString(trimmed) {
		return ContentTypeXHTML
	}
	if markupRe.MatchString(trimmed) {
		return ContentTypeHTML
	}
	return ContentTypeText
}
