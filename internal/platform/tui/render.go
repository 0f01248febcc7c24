package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// ansiCodes maps core.Color to terminal colour codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorBrown:         "130",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenStyles holds one lipgloss style per colour, bound to a renderer so
// SSH sessions get their own colour profile.
type ScreenStyles map[core.Color]lipgloss.Style

// NewScreenStyles builds styles for r. A nil renderer uses lipgloss's default.
func NewScreenStyles(r *lipgloss.Renderer) ScreenStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := ScreenStyles{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a Screen to a styled string.
// Adjacent cells of the same colour share one escape sequence.
func (st ScreenStyles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			style, ok := st[color]
			if !ok {
				style = st[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
