package study

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnsense/internal/analysis"
	"github.com/abhisek/learnsense/internal/router"
	"github.com/abhisek/learnsense/internal/screen"
	"github.com/abhisek/learnsense/internal/screens/about"
	"github.com/abhisek/learnsense/internal/screens/practice"
	"github.com/abhisek/learnsense/internal/session"
	"github.com/abhisek/learnsense/internal/ui/components"
	"github.com/abhisek/learnsense/internal/ui/layout"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

// Analyzer produces a diagnostic for a request.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Response, error)
}

type focusField int

const (
	focusTopic focusField = iota
	focusUnderstanding
	focusStyle
	focusButton
	focusCount
)

// StudyScreen is the input form and the results view.
type StudyScreen struct {
	coord    *session.Coordinator
	analyzer Analyzer
	timeout  time.Duration
	log      *zap.SugaredLogger

	topic         components.TextInput
	understanding components.TextArea
	style         components.StyleSelector
	focus         focusField
	spinner       spinner.Model
	results       viewport.Model
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// Config wires the study screen.
type Config struct {
	Analyzer     Analyzer
	DefaultStyle analysis.LearningStyle
	// Timeout bounds one analysis call. Zero means no deadline.
	Timeout time.Duration
	Log     *zap.SugaredLogger
}

// New creates a StudyScreen in the input view.
func New(cfg Config) *StudyScreen {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	coord := session.NewCoordinator(cfg.DefaultStyle)
	return &StudyScreen{
		coord:         coord,
		analyzer:      cfg.Analyzer,
		timeout:       cfg.Timeout,
		log:           log,
		topic:         components.NewTextInput("Topic", "e.g. Photosynthesis", 120),
		understanding: components.NewTextArea("What you understand so far", "Explain it in your own words...", 6, 4000),
		style:         components.NewStyleSelector(coord.Style()),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		results:       viewport.New(),
	}
}

// Coordinator exposes the view state.
func (s *StudyScreen) Coordinator() *session.Coordinator {
	return s.coord
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.topic.Focus()
}

func (s *StudyScreen) Title() string {
	if s.coord.State() == session.StateResults {
		return "Results"
	}
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.coord.State() == session.StateResults {
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
		}
		if r := s.coord.Response(); r != nil && len(r.PracticeProblems) > 0 {
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Practice"})
		}
		return append(hints,
			layout.KeyHint{Key: "N", Description: "New analysis"},
			layout.KeyHint{Key: "A", Description: "About"},
			layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
		)
	}
	if s.coord.Loading() {
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Reset"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Analyze"},
		{Key: "Ctrl+A", Description: "About"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		return s.handleDone(msg)

	case spinner.TickMsg:
		if !s.coord.Loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.coord.State() == session.StateResults {
			return s.handleResultsKey(msg)
		}
		return s.handleInputKey(msg)
	}

	// Cursor blink and other messages go to the focused field.
	if s.coord.State() == session.StateInput {
		return s, s.forwardToFocused(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleInputKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+r" {
		return s, s.reset()
	}

	// Screens pushed on top would swallow the pending result, so
	// navigation waits for the call to finish.
	if s.coord.Loading() {
		return s, nil
	}

	switch key {
	case "ctrl+a":
		return s, pushAbout
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return s, s.submit()
	case "enter":
		if s.focus != focusUnderstanding {
			return s, s.submit()
		}
	}

	return s, s.forwardToFocused(msg)
}

func (s *StudyScreen) handleResultsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "home", "g":
		s.results.GotoTop()
		return s, nil
	case "end", "G":
		s.results.GotoBottom()
		return s, nil
	case "p", "P":
		if r := s.coord.Response(); r != nil && len(r.PracticeProblems) > 0 {
			problems := r.PracticeProblems
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(problems)}
			}
		}
	case "n", "N", "ctrl+r":
		return s, s.reset()
	case "a", "A", "ctrl+a":
		return s, pushAbout
	}

	var cmd tea.Cmd
	s.results, cmd = s.results.Update(msg)
	return s, cmd
}

func pushAbout() tea.Msg {
	return router.PushScreenMsg{Screen: about.New()}
}

func (s *StudyScreen) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
		s.coord.SetTopic(s.topic.Value())
	case focusUnderstanding:
		s.understanding, cmd = s.understanding.Update(msg)
		s.coord.SetUnderstanding(s.understanding.Value())
	case focusStyle:
		s.style, cmd = s.style.Update(msg)
		s.coord.SetStyle(s.style.Selected)
	}
	return cmd
}

func (s *StudyScreen) setFocus(f focusField) tea.Cmd {
	s.topic.Blur()
	s.understanding.Blur()
	s.focus = f
	switch f {
	case focusTopic:
		return s.topic.Focus()
	case focusUnderstanding:
		return s.understanding.Focus()
	}
	return nil
}

// submit starts one analysis call. Nothing is sent when the coordinator
// refuses the input.
func (s *StudyScreen) submit() tea.Cmd {
	s.coord.SetTopic(s.topic.Value())
	s.coord.SetUnderstanding(s.understanding.Value())
	s.coord.SetStyle(s.style.Selected)

	ticket, err := s.coord.Submit()
	if err != nil {
		s.log.Debugw("submit refused", "error", err)
		return nil
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), s.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	s.coord.Bind(ticket.Token, cancel)
	s.style.Disabled = true

	s.log.Infow("analysis started",
		"style", ticket.Request.LearningStyle.Key(),
		"topic_len", len(ticket.Request.Topic),
		"understanding_len", len(ticket.Request.UserUnderstanding),
	)

	analyzer := s.analyzer
	return tea.Batch(
		s.spinner.Tick,
		func() tea.Msg {
			resp, err := analyzer.Analyze(ctx, ticket.Request)
			return analysisDoneMsg{Token: ticket.Token, Response: resp, Err: err}
		},
	)
}

func (s *StudyScreen) handleDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	if !s.coord.Complete(msg.Token, msg.Response, msg.Err) {
		s.log.Debugw("stale analysis result dropped")
		return s, nil
	}
	s.style.Disabled = false
	if msg.Err != nil {
		s.log.Warnw("analysis failed", "error", msg.Err)
		return s, s.setFocus(s.focus)
	}
	s.results.GotoTop()
	s.topic.Blur()
	s.understanding.Blur()
	return s, nil
}

func (s *StudyScreen) reset() tea.Cmd {
	s.coord.Reset()
	s.topic.Reset()
	s.understanding.Reset()
	s.style.Disabled = false
	s.results.SetContent("")
	s.results.GotoTop()
	return s.setFocus(focusTopic)
}

func (s *StudyScreen) View(st *theme.Styles, width, height int) string {
	if s.coord.State() == session.StateResults {
		return s.renderResults(st, width, height)
	}
	return s.renderInput(st, width, height)
}
