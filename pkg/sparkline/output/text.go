package output

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

var arrows = map[models.Direction]string{
	models.DirectionUp:   "↑",
	models.DirectionDown: "↓",
	models.DirectionSame: "→",
}

var directionStyles = map[models.Direction]lipgloss.Style{
	models.DirectionUp:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	models.DirectionDown: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	models.DirectionSame: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// ToText draws s as a row of block characters followed by a direction arrow.
// Heights come from the Y coordinates, so bounds and truncation apply.
func ToText(s *models.Sparkline, colored bool) string {
	if s.Empty() {
		return ""
	}

	var b strings.Builder
	for _, p := range s.Points {
		b.WriteRune(blockFor(p.Y, s.Height))
	}
	line := b.String()
	arrow := arrows[s.Direction]

	if !colored {
		return line + " " + arrow
	}
	return lipgloss.NewStyle().Render(line) + " " + directionStyles[s.Direction].Render(arrow)
}

// blockFor maps a Y coordinate (0 at the top) to a block rune.
func blockFor(y, height float64) rune {
	if height <= 0 {
		return blocks[0]
	}
	level := (1 - y/height) * float64(len(blocks)-1)
	idx := int(math.Round(level))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(blocks) {
		idx = len(blocks) - 1
	}
	return blocks[idx]
}
