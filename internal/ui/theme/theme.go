package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/settings"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Warning   color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is a calm indigo-on-slate palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#818CF8"), // Indigo
	Secondary: lipgloss.Color("#2DD4BF"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"),
	Error:     lipgloss.Color("#F43F5E"),
	Warning:   lipgloss.Color("#FACC15"),
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	Bg:        lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
}

// Light keeps the same hues at print-friendly contrast.
var Light = Palette{
	Primary:   lipgloss.Color("#4F46E5"),
	Secondary: lipgloss.Color("#0D9488"),
	Accent:    lipgloss.Color("#B45309"),
	Success:   lipgloss.Color("#15803D"),
	Error:     lipgloss.Color("#BE123C"),
	Warning:   lipgloss.Color("#A16207"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Styles are the rendered styles for one theme.
type Styles struct {
	Theme settings.Theme
	Palette

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
	Banner lipgloss.Style

	// States
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	ErrorText  lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	InputFocused   lipgloss.Style
	InputBlurred   lipgloss.Style
}

// New builds the styles for t. Anything other than light renders dark.
func New(t settings.Theme) *Styles {
	p := Dark
	if t == settings.ThemeLight {
		p = Light
	} else {
		t = settings.ThemeDark
	}
	return build(t, p)
}

func build(t settings.Theme, p Palette) *Styles {
	return &Styles{
		Theme:   t,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Align(lipgloss.Center),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Align(lipgloss.Center),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Hint: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),
		Label: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Footer: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Foreground(p.Error).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(p.Text),
		Correct: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Incorrect: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		ErrorText: lipgloss.NewStyle().
			Foreground(p.Error),

		ProgressFilled: lipgloss.NewStyle().
			Background(p.Secondary),
		ProgressEmpty: lipgloss.NewStyle().
			Background(p.Border),
		ButtonActive: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Bg).
			Bold(true).
			Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}

// ScoreColor grades a 0-100 clarity score.
func (s *Styles) ScoreColor(score int) color.Color {
	switch {
	case score >= 70:
		return s.Success
	case score >= 40:
		return s.Warning
	}
	return s.Error
}
