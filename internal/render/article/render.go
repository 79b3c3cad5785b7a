package article

import (
	"regexp"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// UnavailablePlaceholder is shown for posts whose body is empty, typically
// because the API withheld a paywalled article.
const UnavailablePlaceholder = "(No content: this article may be paywalled)\n\n" +
	"Visit the article URL above to read it in your browser."

var reBlankRun = regexp.MustCompile(`(\n\s*){3,}`)

type nodeKind int

const (
	kindOther nodeKind = iota
	kindText
	kindHeading
	kindBlock
	kindLineBreak
	kindPreformatted
)

type marker struct {
	enter string
	leave string
}

var kindMarkers = map[nodeKind]marker{
	kindHeading:      {enter: "\n\n## ", leave: "\n"},
	kindBlock:        {enter: "\n"},
	kindLineBreak:    {enter: "\n"},
	kindPreformatted: {enter: "\n```\n", leave: "\n```\n"},
}

var elementKinds = map[atom.Atom]nodeKind{
	atom.H1:  kindHeading,
	atom.H2:  kindHeading,
	atom.H3:  kindHeading,
	atom.H4:  kindHeading,
	atom.H5:  kindHeading,
	atom.H6:  kindHeading,
	atom.P:   kindBlock,
	atom.Div: kindBlock,
	atom.Li:  kindBlock,
	atom.Br:  kindLineBreak,
	atom.Pre: kindPreformatted,
}

// Elements whose text is never reader-visible.
var rawTextElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// HTMLToText converts an article body into plain text. Headings become "## "
// lines and pre blocks are fenced with backticks. Runs of blank lines collapse
// to a single blank line; the result is not wrapped.
func HTMLToText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return UnavailablePlaceholder
	}
	doc, err := nethtml.Parse(strings.NewReader(raw))
	if err != nil {
		return collapseBlankRuns(raw)
	}
	body := findBodyNode(doc)
	if body == nil {
		return ""
	}

	var b strings.Builder
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		emitNode(&b, child)
	}
	return collapseBlankRuns(b.String())
}

func collapseBlankRuns(s string) string {
	return strings.TrimSpace(reBlankRun.ReplaceAllString(s, "\n\n"))
}

func classify(node *nethtml.Node) nodeKind {
	switch node.Type {
	case nethtml.TextNode:
		return kindText
	case nethtml.ElementNode:
		return elementKinds[node.DataAtom]
	default:
		return kindOther
	}
}

func emitNode(b *strings.Builder, node *nethtml.Node) {
	switch node.Type {
	case nethtml.CommentNode, nethtml.DoctypeNode:
		return
	case nethtml.ElementNode:
		if rawTextElements[node.DataAtom] {
			return
		}
	}

	kind := classify(node)
	if kind == kindText {
		b.WriteString(node.Data)
		return
	}
	m := kindMarkers[kind]
	b.WriteString(m.enter)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		emitNode(b, child)
	}
	b.WriteString(m.leave)
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && node.DataAtom == atom.Body {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}
