package feed

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ContentNamespace is the RSS content module namespace URI, declared on the
// rss root whenever a content:encoded element is written.
const ContentNamespace = "http://purl.org/rss/1.0/modules/content/"

// ParseError reports feed text that is not well-formed XML. The underlying
// parser error is preserved for the caller.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse feed: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Transformer struct {
	splitter   *Splitter
	classifier *Classifier
	stripper   *Stripper
}

func NewTransformer() *Transformer {
	return &Transformer{
		splitter:   NewSplitter(),
		classifier: NewClassifier(),
		stripper:   NewStripper(),
	}
}

// Run rewrites every entry (Atom) or item (RSS 2.0) of feedText so that the
// summary holds only the tag-stripped first paragraph and any remaining
// paragraphs move, markup untouched, into the dialect's full-content field.
// Feeds of an unrecognized dialect and feeds where nothing needed rewriting
// are returned byte-for-byte. Malformed XML yields a *ParseError.
func (t *Transformer) Run(feedText string) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true

	if err := doc.ReadFromString(feedText); err != nil {
		return "", &ParseError{Err: err}
	}

	root := doc.Root()
	if root == nil {
		return feedText, nil
	}

	var modified bool
	switch root.Tag {
	case "feed":
		modified = t.transformAtom(root)
	case "rss":
		modified = t.transformRSS(root)
	default:
		return feedText, nil
	}

	if !modified {
		return feedText, nil
	}

	ensureDeclaration(doc)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize feed: %w", err)
	}

	return out, nil
}

func (t *Transformer) transformAtom(root *etree.Element) bool {
	modified := false

	for _, entry := range root.SelectElements("entry") {
		summary := entry.SelectElement("summary")
		if summary == nil || strings.TrimSpace(summary.Text()) == "" {
			continue
		}

		first, second := t.splitter.Run(summary.Text())
		cleaned := t.stripper.Run(first)

		if summary.Text() != cleaned {
			summary.SetText(cleaned)
			modified = true
		}

		if second == "" {
			continue
		}

		label := t.classifier.Run(second)
		if label == ContentTypeText {
			// Plain remainders are still served as html; readers treat the
			// content element body as markup either way.
			label = ContentTypeHTML
		}

		content := entry.SelectElement("content")
		if content == nil {
			content = entry.CreateElement("content")
		}
		content.CreateAttr("type", string(label))
		content.SetCData(second)
		modified = true
	}

	return modified
}

func (t *Transformer) transformRSS(root *etree.Element) bool {
	channel := root.SelectElement("channel")
	if channel == nil {
		return false
	}

	items := channel.SelectElements("item")
	if len(items) == 0 {
		return false
	}

	modified := false
	needNamespace := false

	for _, item := range items {
		summary := item.SelectElement("summary")
		description := item.SelectElement("description")

		var source string
		switch {
		case summary != nil && strings.TrimSpace(summary.Text()) != "":
			source = summary.Text()
		case description != nil:
			source = description.Text()
		default:
			continue
		}

		if strings.TrimSpace(source) == "" {
			continue
		}

		first, second := t.splitter.Run(source)
		cleaned := t.stripper.Run(first)

		// Summary and description are kept in sync with the cleaned first
		// paragraph, whichever of the two the item started with.
		if summary == nil {
			summary = item.CreateElement("summary")
			modified = true
		}
		if description == nil {
			description = item.CreateElement("description")
			modified = true
		}
		if summary.Text() != cleaned {
			summary.SetText(cleaned)
			modified = true
		}
		if description.Text() != cleaned {
			description.SetText(cleaned)
			modified = true
		}

		if second == "" {
			continue
		}

		encoded := item.SelectElement("content:encoded")
		if encoded == nil {
			encoded = item.CreateElement("content:encoded")
		}
		encoded.SetCData(second)
		needNamespace = true
		modified = true
	}

	if needNamespace && root.SelectAttr("xmlns:content") == nil {
		root.CreateAttr("xmlns:content", ContentNamespace)
	}

	return modified
}

// ensureDeclaration prepends a UTF-8 XML declaration when the document was
// parsed without one.
func ensureDeclaration(doc *etree.Document) {
	for _, child := range doc.Child {
		if pi, ok := child.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}

	pi := doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.RemoveChild(pi)
	doc.InsertChildAt(0, pi)
}
