package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weatherwidget/backend/internal/domain"
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8A8A")).Bold(true)
	MutedColor = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	HelpStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	LabelStyle = lipgloss.NewStyle().Bold(true)
)

// backgroundColors mirrors the page's background classes
var backgroundColors = map[domain.BackgroundStyle]lipgloss.Color{
	domain.BackgroundRain:    lipgloss.Color("#3A4F63"),
	domain.BackgroundCloud:   lipgloss.Color("#8E9EAB"),
	domain.BackgroundSnow:    lipgloss.Color("#DDE3EA"),
	domain.BackgroundClear:   lipgloss.Color("#F7B733"),
	domain.BackgroundDefault: lipgloss.Color("#4B6CB7"),
}

// PanelStyle returns the bordered panel style for a background class
func PanelStyle(bg domain.BackgroundStyle) lipgloss.Style {
	color, ok := backgroundColors[bg]
	if !ok {
		color = backgroundColors[domain.BackgroundDefault]
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 3)
}
