package about

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/screen"
	"github.com/abhisek/learnsense/internal/ui/layout"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

var paragraphs = []string{
	"Most study tools check whether you can repeat an answer. LearnSense asks you to explain a topic in your own words and reads that explanation the way a tutor would.",
	"An invisible confusion is a gap you cannot see from the inside. You feel like you understand, your notes look right, yet one wrong assumption quietly blocks everything built on top of it.",
	"For example, you might say plants \"eat sunlight\". It sounds close enough, but treating light as food rather than as an energy source makes the rest of photosynthesis impossible to follow.",
	"Each analysis names that hidden gap, lists misconceptions and missing prerequisites, rewrites the idea in the learning style you picked, and gives you practice problems aimed at the gap.",
}

// AboutScreen explains invisible confusion.
type AboutScreen struct {
	vp viewport.Model
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates an AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{vp: viewport.New()}
}

func (a *AboutScreen) Init() tea.Cmd { return nil }

func (a *AboutScreen) Title() string { return "About Invisible Confusion" }

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); !ok {
		return a, nil
	}
	var cmd tea.Cmd
	a.vp, cmd = a.vp.Update(msg)
	return a, cmd
}

func (a *AboutScreen) View(st *theme.Styles, width, height int) string {
	w := width - 4
	if w > 80 {
		w = 80
	}

	var b strings.Builder
	b.WriteString(st.Title.Width(w).Render("What is invisible confusion?"))
	b.WriteString("\n\n")
	for _, p := range paragraphs {
		b.WriteString(st.Body.Width(w).Render(p))
		b.WriteString("\n\n")
	}

	a.vp.SetWidth(width)
	a.vp.SetHeight(height)
	a.vp.SetContent(lipgloss.NewStyle().PaddingLeft(2).Render(b.String()))
	return a.vp.View()
}
