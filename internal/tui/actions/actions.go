package actions

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// URLActionSuccessMsg reports a completed open or copy of a post URL.
type URLActionSuccessMsg struct {
	Status string
	Opened bool
}

type URLActionErrorMsg struct {
	Err error
}

// ClearStatusMsg clears the status line if it still shows status ID.
type ClearStatusMsg struct {
	ID int
}

// OpenURLCmd opens url in the browser, falling back to copying it.
func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return URLActionSuccessMsg{Status: "Opened post in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return URLActionSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return URLActionErrorMsg{Err: errors.New("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return URLActionSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return URLActionErrorMsg{Err: errors.New("could not copy URL to clipboard")}
	}
}

func ClearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
