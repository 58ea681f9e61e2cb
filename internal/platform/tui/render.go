package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// colorStyles maps core.Color to lipgloss styles on the 256-color palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBlack:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("127")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("104")),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("74")),
	core.ColorLime:      lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
	core.ColorTurquoise: lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Blank and single-color rows go out in one piece
		if c, ok := uniformColor(s, y); ok {
			sb.WriteString(styleFor(c).Render(s.Row(y)))
			continue
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// uniformColor reports whether every cell of row y has the same color.
func uniformColor(s *core.Screen, y int) (core.Color, bool) {
	c := s.GetCell(0, y).Color
	for x := 1; x < s.Width(); x++ {
		if s.GetCell(x, y).Color != c {
			return c, false
		}
	}
	return c, true
}
