package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/ui/components"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

const introText = "Explain a topic in your own words. LearnSense looks for misconceptions, missing prerequisites and the invisible confusion holding you back."

func contentWidth(width int) int {
	w := width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (s *StudyScreen) renderInput(st *theme.Styles, width, height int) string {
	w := contentWidth(width)
	s.understanding.SetWidth(w - 4)

	var b strings.Builder
	b.WriteString(st.Hint.Width(w).Render(introText))
	b.WriteString("\n\n")
	b.WriteString(s.topic.View(st, w))
	b.WriteString("\n")
	b.WriteString(s.understanding.View(st))
	b.WriteString("\n")
	b.WriteString(s.style.View(st, s.focus == focusStyle))
	b.WriteString("\n\n")

	btn := components.NewButton("Analyze", s.coord.CanSubmit(), nil)
	btn.Focused = s.focus == focusButton
	b.WriteString(btn.View(st))

	if s.coord.Loading() {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(st.Primary).Render(s.spinner.View()))
		b.WriteString(st.Hint.Render(" Analyzing your understanding..."))
	}

	if msg := s.coord.Err(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(st.Banner.Width(w).Render(msg))
	}

	return lipgloss.NewStyle().PaddingLeft(2).MaxHeight(height).Render(b.String())
}

func (s *StudyScreen) renderResults(st *theme.Styles, width, height int) string {
	r := s.coord.Response()
	if r == nil {
		return ""
	}
	w := contentWidth(width)

	var b strings.Builder
	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(st.Heading.Render(title))
		b.WriteString("\n")
	}
	paragraph := func(text string) {
		b.WriteString(st.Body.Width(w).Render(text))
		b.WriteString("\n")
	}
	bullets := func(items []string, empty string) {
		if len(items) == 0 {
			b.WriteString(st.Hint.Render("  " + empty))
			b.WriteString("\n")
			return
		}
		for _, item := range items {
			b.WriteString(st.Body.Width(w).Render("  • " + item))
			b.WriteString("\n")
		}
	}

	b.WriteString(st.Label.Render(s.coord.Topic()))
	b.WriteString(st.Hint.Render("  (" + s.coord.Style().String() + ")"))
	b.WriteString("\n\n")
	b.WriteString(components.NewScoreBar("Clarity", r.ClarityScore, w).View(st))
	b.WriteString("\n")

	section("The invisible confusion")
	b.WriteString(st.Card.BorderForeground(st.Accent).Width(w).Render(r.InvisibleConfusion))
	b.WriteString("\n")

	section("Misconceptions")
	bullets(r.DetectedMisconceptions, "None detected")

	section("Missing prerequisites")
	bullets(r.MissingPrerequisites, "None")

	section("Simplified explanation")
	paragraph(r.SimplifiedExplanation)

	section("Next steps")
	for i, step := range r.NextSteps {
		b.WriteString(st.Body.Width(w).Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}

	section("Study notes")
	paragraph(r.StudyNotes)

	section("Video searches")
	bullets(r.YoutubeSearchQueries, "None")

	section("Practice")
	if n := len(r.PracticeProblems); n > 0 {
		b.WriteString(st.Body.Render(fmt.Sprintf("  %d practice problem%s ready. Press P to start.", n, plural(n))))
	} else {
		b.WriteString(st.Hint.Render("  No practice problems"))
	}
	b.WriteString("\n")

	s.results.SetWidth(width)
	s.results.SetHeight(height)
	s.results.SetContent(lipgloss.NewStyle().PaddingLeft(2).Render(b.String()))
	return s.results.View()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
