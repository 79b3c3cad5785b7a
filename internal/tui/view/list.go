package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/substack-reader/internal/substack"
	tuistate "github.com/glabrego/substack-reader/internal/tui/state"
	tuitheme "github.com/glabrego/substack-reader/internal/tui/theme"
)

const (
	selectedMarker = "▶ "
	lockMarker     = "🔒 "
)

// PostLine renders one list row: selection marker, lock for paid posts,
// bracketed date and title.
func PostLine(post substack.Post, selected bool, width int) string {
	var b strings.Builder
	if selected {
		b.WriteString(selectedMarker)
	} else {
		b.WriteString("  ")
	}
	if post.Free {
		b.WriteString("  ")
	} else {
		b.WriteString(lockMarker)
	}
	b.WriteString("[" + post.Date + "] ")
	b.WriteString(post.Title)

	line := b.String()
	if width > 0 {
		line = runewidth.Truncate(line, width, "…")
	}
	return line
}

// ListBody renders the rows that fit in height, keeping the selection in view.
func ListBody(posts []substack.Post, selected, width, height int, th tuitheme.Theme) string {
	if len(posts) == 0 {
		return th.Muted.Render("No posts available.") + "\n"
	}
	start, end := tuistate.CenteredWindow(len(posts), selected, height)
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(th.RenderActiveLine(i == selected, PostLine(posts[i], i == selected, width)))
		b.WriteString("\n")
	}
	return b.String()
}
