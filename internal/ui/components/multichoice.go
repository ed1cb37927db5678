package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnsense/internal/ui/theme"
)

// MultiChoice renders a four-option question. State lives with the caller.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
}

var optionLabels = []string{"A", "B", "C", "D"}

// View renders the question and its options, marking the answer once
// submitted.
func (m MultiChoice) View(st *theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.Label.Width(width).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			b.WriteString(st.Correct.Render(line + "  ✓"))
		case m.Submitted && i == m.Selected:
			b.WriteString(st.Incorrect.Render(line + "  ✗"))
		case m.Submitted:
			b.WriteString(st.Hint.Italic(false).Render(line))
		case i == m.Selected:
			b.WriteString(st.Selected.Render(line))
		default:
			b.WriteString(st.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the submitted choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Selected == m.CorrectIndex
}
