package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorBorder  = lipgloss.Color("#6c7086")
	colorFocused = lipgloss.Color("#a6e3a1")
	colorError   = lipgloss.Color("#f38ba8")
)

// Pane is a titled box. Height 0 sizes the box to its content.
type Pane struct {
	Title   string
	Badge   string
	Height  int
	Content string
	Focused bool
	Failed  bool
}

func (p Pane) Render(width int) string {
	if width < 4 {
		width = 4
	}
	border := colorBorder
	if p.Focused {
		border = colorFocused
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(colorText)
	if p.Failed {
		badgeStyle = badgeStyle.Foreground(colorError)
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-2), "") + " "
	}
	badgeText := ""
	if b := strings.TrimSpace(p.Badge); b != "" {
		badgeText = " " + b + " "
	}
	if ansi.StringWidth(titleText)+ansi.StringWidth(badgeText)+1 > innerWidth {
		badgeText = ""
	}
	dashes := innerWidth - ansi.StringWidth(titleText) - ansi.StringWidth(badgeText)
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		badgeStyle.Render(badgeText) +
		borderStyle.Render("╮")

	lines := SplitLines(p.Content)
	if len(lines) == 0 {
		lines = []string{""}
	}
	innerHeight := len(lines)
	if p.Height > 2 {
		innerHeight = p.Height - 2
	}
	v := borderStyle.Render("│")
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// SplitLines splits s into lines; blank input yields no lines.
func SplitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Cell fits s into exactly width display cells.
func Cell(s string, width int) string {
	if width <= 1 {
		return ansi.Truncate(s, max(width, 0), "")
	}
	if ansi.StringWidth(s) > width-1 {
		s = ansi.Truncate(s, width-1, "…")
	}
	return PadRight(s, width)
}
