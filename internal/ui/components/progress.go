package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// ProgressBar renders a fraction in [0, 1] as a filled bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = theme.Body.Render(p.Label) + "  "
	}
	barWidth := max(p.Width-lipgloss.Width(label)-6, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	return label +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(p.Percent*100+0.5)))
}
