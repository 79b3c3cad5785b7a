package view

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"

	tuitheme "github.com/glabrego/substack-reader/internal/tui/theme"
)

const appName = "Substack Reader"

// AppTitle derives a display title from the publication URL, so
// https://www.the-main-thread.com becomes "The Main Thread · Substack Reader".
func AppTitle(baseURL string) string {
	name := publicationName(baseURL)
	if name == "" {
		return appName
	}
	return name + " · " + appName
}

func publicationName(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	if i := strings.LastIndex(host, "."); i > 0 {
		host = host[:i]
	}
	host = strings.TrimSuffix(host, ".substack")
	words := strings.FieldsFunc(host, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func TitleBar(title string, width int, th tuitheme.Theme) string {
	line := " 📰 " + title
	if width > 0 {
		line = runewidth.Truncate(line, width, "…")
	}
	return th.Title.Render(line)
}

// StatusBar shows a transient status message when there is one, otherwise the
// key hints for the current screen.
func StatusBar(bindings []key.Binding, status string, isErr bool, width int, th tuitheme.Theme) string {
	if status != "" {
		style := th.StateIdle
		if isErr {
			style = th.StateWarn
		}
		if width > 0 {
			status = runewidth.Truncate(status, width, "…")
		}
		return style.Render(status)
	}
	h := help.New()
	h.Width = width
	return h.ShortHelpView(bindings)
}
