package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/substack-reader/internal/tui/state"
)

// KeyMap holds the navigation bindings plus the default bindings that apply
// only when navigation leaves a key unhandled.
type KeyMap struct {
	Quit   key.Binding
	Cancel key.Binding
	Down   key.Binding
	Up     key.Binding
	Select key.Binding

	ForceQuit key.Binding
	OpenURL   key.Binding
	CopyURL   key.Binding
}

func Default() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		OpenURL:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		CopyURL:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
	}
}

// Decode maps a key event to a navigation input, or state.InputNone.
func (k KeyMap) Decode(msg tea.KeyMsg) state.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return state.InputQuit
	case key.Matches(msg, k.Cancel):
		return state.InputCancel
	case key.Matches(msg, k.Down):
		return state.InputDown
	case key.Matches(msg, k.Up):
		return state.InputUp
	case key.Matches(msg, k.Select):
		return state.InputSelect
	default:
		return state.InputNone
	}
}

// HelpFor lists the bindings worth advertising on a screen.
func (k KeyMap) HelpFor(screen state.Screen) []key.Binding {
	if screen == state.ScreenArticle {
		up, down, back := k.Up, k.Down, k.Cancel
		up.SetHelp("↑/k", "scroll up")
		down.SetHelp("↓/j", "scroll down")
		back.SetHelp("esc/q", "back")
		return []key.Binding{up, down, back, k.OpenURL, k.CopyURL}
	}
	return []key.Binding{k.Up, k.Down, k.Select, k.OpenURL, k.CopyURL, k.Quit}
}
