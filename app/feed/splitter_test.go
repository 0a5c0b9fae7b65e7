package feed

import (
	"testing"
)

func TestSplitterMarkupParagraph(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("<p>First paragraph</p><p>Second paragraph</p>")

	if first != "<p>First paragraph</p>" {
		t.Errorf("Expected first paragraph with tags, got: %q", first)
	}
	if second != "<p>Second paragraph</p>" {
		t.Errorf("Expected remainder after first paragraph, got: %q", second)
	}
}

func TestSplitterMarkupParagraphWithAttributes(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run(`<P class="lead">Intro</P><p>Body</p>`)

	if first != `<P class="lead">Intro</P>` {
		t.Errorf("Expected case-insensitive match including attributes, got: %q", first)
	}
	if second != "<p>Body</p>" {
		t.Errorf("Expected remainder, got: %q", second)
	}
}

func TestSplitterOnlyFirstParagraphIsBoundary(t *testing.T) {
	splitter := NewSplitter()

	_, second := splitter.Run("<p>One</p><p>Two</p><p>Three</p>")

	// Everything after the first element is bulk remainder, not re-split.
	if second != "<p>Two</p><p>Three</p>" {
		t.Errorf("Expected bulk remainder, got: %q", second)
	}
}

func TestSplitterDoesNotMatchPreTag(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("<pre>code</pre>\n\nSecond part")

	if first != "<pre>code</pre>" {
		t.Errorf("Expected blank-line split, got first: %q", first)
	}
	if second != "Second part" {
		t.Errorf("Expected blank-line remainder, got: %q", second)
	}
}

func TestSplitterBlankLines(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("One\n\nTwo\n\nThree")

	if first != "One" {
		t.Errorf("Expected 'One', got: %q", first)
	}
	if second != "Two\n\nThree" {
		t.Errorf("Expected remaining parts rejoined, got: %q", second)
	}
}

func TestSplitterNormalizesLineEndings(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("One\r\n\r\nTwo")

	if first != "One" {
		t.Errorf("Expected 'One', got: %q", first)
	}
	if second != "Two" {
		t.Errorf("Expected 'Two', got: %q", second)
	}
}

func TestSplitterSingleParagraph(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("  Solo paragraph  ")

	if first != "Solo paragraph" {
		t.Errorf("Expected trimmed original, got: %q", first)
	}
	if second != "" {
		t.Errorf("Expected empty remainder, got: %q", second)
	}
}

func TestSplitterEmptyInput(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("")

	if first != "" || second != "" {
		t.Errorf("Expected empty pair, got: %q / %q", first, second)
	}
}

func TestSplitterWhitespaceOnlyInput(t *testing.T) {
	splitter := NewSplitter()

	first, second := splitter.Run("   \n\n  ")

	// Whitespace-only input is returned unmodified, not trimmed to nothing.
	if first != "   \n\n  " {
		t.Errorf("Expected untouched input, got: %q", first)
	}
	if second != "" {
		t.Errorf("Expected empty remainder, got: %q", second)
	}
}
