package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnsense/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update fires OnPress on enter while active.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button. Inactive buttons render dimmed.
func (b Button) View(st *theme.Styles) string {
	prefix := "  "
	if b.Focused {
		prefix = "▸ "
	}
	label := prefix + b.Label + " "
	if b.Active {
		return st.ButtonActive.Render(label)
	}
	return st.ButtonInactive.Render(label)
}
