package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	Selected   lipgloss.Style
	Date       lipgloss.Style
	Subtitle   lipgloss.Style
	URL        lipgloss.Style
	Free       lipgloss.Style
	Paid       lipgloss.Style
	Body       lipgloss.Style
	Card       lipgloss.Style
	Muted      lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpSky := lipgloss.Color("#89dceb")
	cpBlue := lipgloss.Color("#89b4fa")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface2 := lipgloss.Color("#585b70")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(cpSky),
		Date:       lipgloss.NewStyle().Foreground(cpYellow),
		Subtitle:   lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),
		URL:        lipgloss.NewStyle().Foreground(cpBlue).Faint(true),
		Free:       lipgloss.NewStyle().Foreground(cpGreen),
		Paid:       lipgloss.NewStyle().Foreground(cpRed),
		Body:       lipgloss.NewStyle().Foreground(cpText),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpSurface2).
			Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(cpOverlay1),
		StateIdle: lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn: lipgloss.NewStyle().Foreground(cpRed),
	}
}

// AccessLabel renders the free/paid marker shown in the article header.
func (t Theme) AccessLabel(free bool) string {
	if free {
		return t.Free.Render("free")
	}
	return t.Paid.Render("paid")
}

// RenderActiveLine highlights the selected list row.
func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.Selected.Inherit(t.ActiveLine).Render(line)
}
