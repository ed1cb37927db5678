package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/ui/theme"
)

// ScoreBar displays a 0-100 score as a horizontal bar.
type ScoreBar struct {
	Label string
	Score int
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the bar colored by grade.
func (p ScoreBar) View(st *theme.Styles) string {
	var result string

	if p.Label != "" {
		result += st.Label.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	const scoreWidth = 9 // "  100/100"

	barWidth := p.Width - labelWidth - scoreWidth
	if barWidth < 4 {
		barWidth = 4
	}

	score := p.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := barWidth * score / 100
	empty := barWidth - filled

	grade := st.ScoreColor(score)
	result += lipgloss.NewStyle().Background(grade).Render(strings.Repeat(" ", filled))
	result += st.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(grade).Bold(true).Render(fmt.Sprintf("  %d/100", score))

	return result
}
