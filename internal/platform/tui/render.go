package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lawn-defense/internal/core"
)

// colorStyles maps the core palette to lipgloss styles (ANSI 256 codes).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Bold(true),
	core.ColorGold:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorTileA:        lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorTileB:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
