package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/glabrego/substack-reader/internal/logging"
	article "github.com/glabrego/substack-reader/internal/render/article"
	"github.com/glabrego/substack-reader/internal/substack"
	"github.com/glabrego/substack-reader/internal/tui/actions"
	"github.com/glabrego/substack-reader/internal/tui/keys"
	"github.com/glabrego/substack-reader/internal/tui/platform"
	tuistate "github.com/glabrego/substack-reader/internal/tui/state"
	tuitheme "github.com/glabrego/substack-reader/internal/tui/theme"
	"github.com/glabrego/substack-reader/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	statusTTL      = 3 * time.Second
	errorStatusTTL = 4 * time.Second
)

type Model struct {
	posts  []substack.Post
	nav    *tuistate.Navigation
	keys   keys.KeyMap
	theme  tuitheme.Theme
	title  string
	logger *log.Logger

	// Converted article text by post index, filled when an article opens.
	texts map[int]string

	width     int
	height    int
	status    string
	statusErr bool
	statusID  int

	openURLFn func(string) error
	copyURLFn func(string) error
}

func NewModel(posts []substack.Post, baseURL string) Model {
	return Model{
		posts:     posts,
		nav:       tuistate.NewNavigation(len(posts)),
		keys:      keys.Default(),
		theme:     tuitheme.Default(),
		title:     view.AppTitle(baseURL),
		logger:    logging.Discard(),
		texts:     make(map[int]string),
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyURLToClipboard,
	}
}

func (m *Model) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = logging.Discard()
	}
	m.logger = logger
}

func (m Model) Navigation() *tuistate.Navigation {
	return m.nav
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case actions.URLActionSuccessMsg:
		return m.setStatus(msg.Status, false)
	case actions.URLActionErrorMsg:
		m.logger.Warn("url action failed", "err", msg.Err)
		return m.setStatus(msg.Err.Error(), true)
	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.nav.Screen()
	if in := m.keys.Decode(msg); in != tuistate.InputNone && m.nav.Handle(in) {
		if m.nav.Quitting() {
			return m, tea.Quit
		}
		if after := m.nav.Screen(); after != before {
			m.logger.Debug("screen changed", "from", before, "to", after, "post", m.nav.Selected())
			if after == tuistate.ScreenArticle {
				m.articleText(m.nav.Selected())
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenURL):
		return m.openCurrentURL()
	case key.Matches(msg, m.keys.CopyURL):
		return m.copyCurrentURL()
	}
	return m, nil
}

func (m Model) openCurrentURL() (tea.Model, tea.Cmd) {
	post, ok := m.currentPost()
	if !ok {
		return m, nil
	}
	validURL, err := platform.ValidatePostURL(post.URL)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m, actions.OpenURLCmd(validURL, m.openURLFn, m.copyURLFn)
}

func (m Model) copyCurrentURL() (tea.Model, tea.Cmd) {
	post, ok := m.currentPost()
	if !ok {
		return m, nil
	}
	validURL, err := platform.ValidatePostURL(post.URL)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m, actions.CopyURLCmd(validURL, m.copyURLFn)
}

func (m Model) setStatus(status string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusErr = isErr
	m.statusID++
	ttl := statusTTL
	if isErr {
		ttl = errorStatusTTL
	}
	return m, actions.ClearStatusCmd(m.statusID, ttl)
}

func (m Model) currentPost() (substack.Post, bool) {
	if len(m.posts) == 0 {
		return substack.Post{}, false
	}
	return m.posts[tuistate.ClampCursor(m.nav.Selected(), len(m.posts))], true
}

// articleText returns the converted body of post i, converting it at most once.
func (m Model) articleText(i int) string {
	if text, ok := m.texts[i]; ok {
		return text
	}
	text := article.HTMLToText(m.posts[i].BodyHTML)
	m.texts[i] = text
	return text
}

func (m Model) View() string {
	width, height := m.size()

	var b strings.Builder
	b.WriteString(view.TitleBar(m.title, width, m.theme))
	b.WriteString("\n\n")

	status := view.StatusBar(m.keys.HelpFor(m.nav.Screen()), m.status, m.statusErr, width, m.theme)
	// Title, blank line, blank line before status, status.
	bodyHeight := height - 4

	switch m.nav.Screen() {
	case tuistate.ScreenArticle:
		post, ok := m.currentPost()
		if !ok {
			break
		}
		card := view.HeaderCard(post, width, m.theme)
		b.WriteString(card)
		b.WriteString("\n")
		lines := article.WrapLines(m.articleText(m.nav.Selected()), width-2)
		for i, line := range lines {
			lines[i] = "  " + m.theme.Body.Render(line)
		}
		b.WriteString(view.RenderBody(lines, m.nav.Scroll(), max(1, bodyHeight-lipgloss.Height(card))))
	default:
		b.WriteString(view.ListBody(m.posts, m.nav.Selected(), width, max(1, bodyHeight), m.theme))
	}

	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	return b.String()
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}
