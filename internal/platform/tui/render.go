package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-128/internal/core"
)

// tile palette: background, foreground
var tilePalette = map[core.Color][2]string{
	core.ColorEmptyTile: {"#cdc1b4", "#cdc1b4"},
	core.ColorTile2:     {"#eee4da", "#776e65"},
	core.ColorTile4:     {"#ede0c8", "#776e65"},
	core.ColorTile8:     {"#f2b179", "#f9f6f2"},
	core.ColorTile16:    {"#f59563", "#f9f6f2"},
	core.ColorTile32:    {"#f67c5f", "#f9f6f2"},
	core.ColorTile64:    {"#f65e3b", "#f9f6f2"},
	core.ColorTile128:   {"#edcf72", "#f9f6f2"},
	core.ColorTileHigh:  {"#3c3a32", "#f9f6f2"},
}

// Styles maps core.Color to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the color table on the given renderer.
// SSH sessions pass a per-session renderer so color detection follows the client.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := Styles{
		core.ColorDefault: r.NewStyle(),
		core.ColorTitle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e")),
		core.ColorMuted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorFrame:   r.NewStyle().Foreground(lipgloss.Color("#bbada0")),
		core.ColorOverlay: r.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#f9f6f2")).
			Background(lipgloss.Color("#8f7a66")),
	}
	for color, p := range tilePalette {
		styles[color] = r.NewStyle().
			Bold(true).
			Background(lipgloss.Color(p[0])).
			Foreground(lipgloss.Color(p[1]))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
