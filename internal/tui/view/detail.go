package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/substack-reader/internal/substack"
	tuitheme "github.com/glabrego/substack-reader/internal/tui/theme"
)

// HeaderCard renders the bordered block above an article body.
func HeaderCard(post substack.Post, width int, th tuitheme.Theme) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	fit := func(s string) string { return runewidth.Truncate(s, inner, "…") }

	lines := make([]string, 0, 4)
	lines = append(lines, th.Section.Render(fit(post.Title)))
	meta := th.AccessLabel(post.Free)
	if post.Date != "" {
		meta = th.Date.Render(post.Date) + "  " + meta
	}
	lines = append(lines, meta)
	if sub := strings.TrimSpace(post.Subtitle); sub != "" {
		lines = append(lines, th.Subtitle.Render(fit(sub)))
	}
	lines = append(lines, th.URL.Render(fit(post.URL)))

	return th.Card.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// RenderBody returns exactly height lines starting at offset. Offsets past the
// end of the content yield blank lines.
func RenderBody(lines []string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	out := make([]string, height)
	for i := range out {
		if idx := offset + i; idx < len(lines) {
			out[i] = lines[idx]
		}
	}
	return strings.Join(out, "\n") + "\n"
}
