package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

// StyleSelector picks one learning style with the arrow keys.
type StyleSelector struct {
	Selected analysis.LearningStyle
	Disabled bool
}

// NewStyleSelector starts on the given style.
func NewStyleSelector(initial analysis.LearningStyle) StyleSelector {
	if !initial.Valid() {
		initial = analysis.DefaultLearningStyle
	}
	return StyleSelector{Selected: initial}
}

// Update cycles on left/right and h/l.
func (s StyleSelector) Update(msg tea.Msg) (StyleSelector, tea.Cmd) {
	if s.Disabled {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.Selected = s.Selected.Prev()
	case "right", "l", "space":
		s.Selected = s.Selected.Next()
	}
	return s, nil
}

// View renders every style as a chip, highlighting the selected one.
func (s StyleSelector) View(st *theme.Styles, focused bool) string {
	chips := make([]string, 0, 4)
	for _, ls := range analysis.LearningStyles() {
		label := " " + ls.String() + " "
		switch {
		case ls == s.Selected && focused:
			chips = append(chips, st.ButtonActive.Padding(0, 0).Render(label))
		case ls == s.Selected:
			chips = append(chips, st.Selected.Render("["+ls.String()+"]"))
		default:
			chips = append(chips, st.Hint.Italic(false).Render(label))
		}
	}
	label := st.Label.Render("Learning style")
	if focused {
		label += st.Hint.Render("  ←/→ to change")
	}
	return label + "\n" + strings.Join(chips, " ")
}
