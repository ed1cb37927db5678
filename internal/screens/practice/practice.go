package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/router"
	"github.com/abhisek/learnsense/internal/screen"
	"github.com/abhisek/learnsense/internal/session"
	"github.com/abhisek/learnsense/internal/ui/components"
	"github.com/abhisek/learnsense/internal/ui/layout"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

// PracticeScreen walks through the practice problems of one analysis.
type PracticeScreen struct {
	problems []analysis.PracticeProblem
	practice *session.Practice
	menu     components.Menu
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over problems.
func New(problems []analysis.PracticeProblem) *PracticeScreen {
	s := &PracticeScreen{
		problems: problems,
		practice: session.NewPractice(problems),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice again", Action: func() tea.Cmd {
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: New(problems)} }
		}},
		{Label: "Back to results", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return s
}

// Practice exposes the walk state.
func (s *PracticeScreen) Practice() *session.Practice {
	return s.practice
}

func (s *PracticeScreen) Init() tea.Cmd { return nil }

func (s *PracticeScreen) Title() string { return "Practice" }

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.practice.Done():
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case s.practice.Answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.practice.Done() {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.practice.Answered() {
		switch key {
		case "enter", "space", "n":
			s.practice.Next()
		}
		return s, nil
	}

	switch key {
	case "1", "2", "3", "4":
		s.practice.Select(int(key[0] - '1'))
		s.practice.Answer()
	case "up", "k":
		s.practice.Move(-1)
	case "down", "j":
		s.practice.Move(1)
	case "enter":
		s.practice.Answer()
	case "h", "H":
		s.practice.ShowHint()
	}
	return s, nil
}

func (s *PracticeScreen) View(st *theme.Styles, width, height int) string {
	w := width - 4
	if w > 100 {
		w = 100
	}

	var b strings.Builder
	if s.practice.Done() {
		b.WriteString(st.Title.Width(w).Render("Practice complete"))
		b.WriteString("\n\n")
		b.WriteString(st.Body.Width(w).Align(lipgloss.Center).Render(
			fmt.Sprintf("You got %d of %d right.", s.practice.Score(), s.practice.Total())))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View(st))
		return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
	}

	prob, _ := s.practice.Current()
	b.WriteString(st.Hint.Render(fmt.Sprintf("Problem %d of %d", s.practice.Index()+1, s.practice.Total())))
	b.WriteString(st.Hint.Render(fmt.Sprintf("   Score %d", s.practice.Score())))
	b.WriteString("\n\n")

	mc := components.MultiChoice{
		Question:     prob.Question,
		Options:      prob.Options,
		CorrectIndex: prob.CorrectOptionIndex,
		Selected:     s.practice.Selected(),
		Submitted:    s.practice.Answered(),
	}
	b.WriteString(mc.View(st, w))

	if s.practice.HintShown() && !s.practice.Answered() {
		b.WriteString("\n")
		b.WriteString(st.Hint.Width(w).Render("Hint: " + prob.Hint))
		b.WriteString("\n")
	}

	if s.practice.Answered() {
		b.WriteString("\n")
		if s.practice.AnsweredCorrectly() {
			b.WriteString(st.Correct.Render("Correct!"))
		} else {
			b.WriteString(st.Incorrect.Render("Not quite. The answer is " + prob.CorrectOption() + "."))
		}
		b.WriteString("\n")
		b.WriteString(st.Card.Width(w).Render(prob.Explanation))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().PaddingLeft(2).MaxHeight(height).Render(b.String())
}
