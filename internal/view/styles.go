package view

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors pick the variant matching the terminal background.
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "#1B5E20", Dark: "#8BC34A"}
	colorSection = lipgloss.AdaptiveColor{Light: "#0D47A1", Dark: "#64B5F6"}
	colorPrompt  = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorSnippet = lipgloss.AdaptiveColor{Light: "#F57F17", Dark: "#FFD54F"}
	colorCode    = lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#4DD0E1"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#BDBDBD", Dark: "#424242"}
	colorHeader  = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
	colorWarning = lipgloss.Color("#FFC107")
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
	bold    lipgloss.Style
	code    lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	prompt  lipgloss.Style
	snippet lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	panel := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		section: r.NewStyle().Bold(true).Foreground(colorSection),
		muted:   r.NewStyle().Foreground(colorMuted),
		warn:    r.NewStyle().Foreground(colorWarning),
		bold:    r.NewStyle().Bold(true),
		code:    r.NewStyle().Foreground(colorCode),
		border:  r.NewStyle().Foreground(colorBorder),
		header:  r.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		prompt:  panel.BorderForeground(colorPrompt),
		snippet: panel.BorderForeground(colorSnippet),
	}
}
