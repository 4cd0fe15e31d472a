package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-drops/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:        lipgloss.NewStyle(),
	core.ColorWater:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	core.ColorMud:            lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
	core.ColorScore:          lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorScorePulse:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Bold(true),
	core.ColorWarning:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorStreak:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorToast:          lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorFloatUp:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorFloatDown:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorFrame:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorDim:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorConfettiYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorConfettiBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorConfettiGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	core.ColorConfettiPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
}

// style returns the lipgloss style for c.
func style(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				// second half of a wide rune
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			sb.WriteString(style(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
