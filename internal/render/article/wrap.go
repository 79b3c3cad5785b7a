package article

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// WrapLines word-wraps text to width and splits it into lines. Words longer
// than width are broken.
func WrapLines(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		return strings.Split(text, "\n")
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}
