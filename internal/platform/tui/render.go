package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tsunami-run/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPlatform: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTrap:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBarrier:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorShard:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorRing:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Italic(true),
	core.ColorPursuer:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Background(lipgloss.Color("17")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
