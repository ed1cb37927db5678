package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/router"
	"github.com/abhisek/learnsense/internal/screen"
	"github.com/abhisek/learnsense/internal/screens/study"
	"github.com/abhisek/learnsense/internal/settings"
	"github.com/abhisek/learnsense/internal/ui/layout"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Analyzer     study.Analyzer
	Theme        *settings.ThemeService
	DefaultStyle analysis.LearningStyle
	Timeout      time.Duration
	Log          *zap.SugaredLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	theme  *settings.ThemeService
	styles *theme.Styles
	log    *zap.SugaredLogger
	width  int
	height int
}

// newAppModel creates a new AppModel with the study screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	current := settings.ThemeDark
	if opts.Theme != nil {
		current = opts.Theme.Current()
	}
	studyScreen := study.New(study.Config{
		Analyzer:     opts.Analyzer,
		DefaultStyle: opts.DefaultStyle,
		Timeout:      opts.Timeout,
		Log:          log,
	})
	return AppModel{
		router: router.New(studyScreen),
		theme:  opts.Theme,
		styles: theme.New(current),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toggleTheme flips the theme and repaints. A failed write keeps the
// old theme on screen.
func (m *AppModel) toggleTheme() {
	if m.theme == nil {
		m.styles = theme.New(m.styles.Theme.Opposite())
		return
	}
	next, err := m.theme.Toggle(context.Background())
	if err != nil {
		m.log.Warnw("theme toggle not saved", "error", err)
		return
	}
	m.log.Debugw("theme toggled", "theme", next.String())
	m.styles = theme.New(next)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.styles, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.styles, title, m.width)
	footer := layout.RenderFooter(m.styles, m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.styles, m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+T", Description: "Theme"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
