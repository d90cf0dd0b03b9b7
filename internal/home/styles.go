package home

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorPrice   lipgloss.Color = "#f9e2af"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorMantle  lipgloss.Color = "#181825"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle    = lipgloss.NewStyle().Foreground(colorPrice).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	trackStyle    = lipgloss.NewStyle().Foreground(colorPrice)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorMantle)
	statusErr     = lipgloss.NewStyle().Foreground(colorError).Background(colorMantle)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
