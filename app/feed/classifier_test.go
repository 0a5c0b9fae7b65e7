package feed

import (
	"testing"
)

func TestClassifierXHTMLWrapped(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run("<div><p>Body</p></div>"); got != ContentTypeXHTML {
		t.Errorf("Expected xhtml, got: %s", got)
	}
}

func TestClassifierXHTMLWrappedWithAttributes(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run(`  <DIV xmlns="http://www.w3.org/1999/xhtml">Body</DIV>  `); got != ContentTypeXHTML {
		t.Errorf("Expected xhtml for attributed div after trimming, got: %s", got)
	}
}

func TestClassifierHTML(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run("Some <b>bold</b> text"); got != ContentTypeHTML {
		t.Errorf("Expected html, got: %s", got)
	}
}

func TestClassifierDivNotSpanningWholeString(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run("<div>Part</div> and a tail"); got != ContentTypeHTML {
		t.Errorf("Expected html when div does not span the string, got: %s", got)
	}
}

func TestClassifierPlainText(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run("Just words, no markup. 1 < 2 even."); got != ContentTypeText {
		t.Errorf("Expected text, got: %s", got)
	}
}

func TestClassifierEmpty(t *testing.T) {
	classifier := NewClassifier()

	if got := classifier.Run(""); got != ContentTypeText {
		t.Errorf("Expected text for empty input, got: %s", got)
	}
}
