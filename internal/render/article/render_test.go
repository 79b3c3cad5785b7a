package article

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestHTMLToText_BlankBodyReturnsPlaceholder(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n"} {
		if got := HTMLToText(raw); got != UnavailablePlaceholder {
			t.Fatalf("HTMLToText(%q) = %q, want placeholder", raw, got)
		}
	}
}

func TestHTMLToText_HeadingThenParagraph(t *testing.T) {
	got := HTMLToText("<h1>Title</h1><p>Body text</p>")
	if got != "## Title\n\nBody text" {
		t.Fatalf("unexpected text: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("expected no run of blank lines, got %q", got)
	}
}

func TestHTMLToText_CollapsesBlankRuns(t *testing.T) {
	got := HTMLToText("a<br><br><br><br><br>b")
	if got != "a\n\nb" {
		t.Fatalf("expected five newlines collapsed to two, got %q", got)
	}
}

func TestHTMLToText_CollapsesWhitespaceOnlyLines(t *testing.T) {
	got := HTMLToText("<div>top</div>\n  \n\t\n   <div>bottom</div>")
	if got != "top\n\nbottom" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHTMLToText_FencesPreformattedBlocks(t *testing.T) {
	got := HTMLToText("<p>Run:</p><pre>make\n  test</pre>")
	want := "Run:\n```\nmake\n  test\n```"
	if got != want {
		t.Fatalf("unexpected text:\n got %q\nwant %q", got, want)
	}
}

func TestHTMLToText_DecodesEntities(t *testing.T) {
	if got := HTMLToText("<p>Fish &amp; chips &lt;3</p>"); got != "Fish & chips <3" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHTMLToText_SkipsScriptsStylesAndComments(t *testing.T) {
	got := HTMLToText(`<p>Visible</p><script>var hidden = 1;</script><style>p { color: red }</style><!-- secret --><noscript>enable js</noscript>`)
	if got != "Visible" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHTMLToText_UnknownElementsPassTextThrough(t *testing.T) {
	got := HTMLToText(`<p>An <em>emphasized</em> <a href="https://example.com">link</a> and <x-widget>custom</x-widget></p>`)
	if got != "An emphasized link and custom" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHTMLToText_UnclosedTags(t *testing.T) {
	got := HTMLToText("<h2>Broken<p>still here")
	if !strings.HasPrefix(got, "## Broken") || !strings.Contains(got, "still here") {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHTMLToText_AllHeadingLevels(t *testing.T) {
	for _, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		got := HTMLToText("<" + tag + ">Level</" + tag + ">")
		if got != "## Level" {
			t.Fatalf("%s: unexpected text %q", tag, got)
		}
	}
}

func TestWrapLines_WrapsAtWordBoundaries(t *testing.T) {
	got := WrapLines("hello world foo", 11)
	if len(got) != 2 || got[0] != "hello world" || got[1] != "foo" {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestWrapLines_BreaksLongWords(t *testing.T) {
	lines := WrapLines("abcdefghij", 4)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > 4 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestWrapLines_KeepsBlankLines(t *testing.T) {
	got := WrapLines("a\n\nb", 80)
	if len(got) != 3 || got[1] != "" {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestWrapLines_EmptyBodyShowsPlaceholder(t *testing.T) {
	lines := WrapLines(HTMLToText(""), 120)
	if len(lines) == 0 || !strings.Contains(lines[0], "paywalled") {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
