package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnsense/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for multi-line free text.
type TextArea struct {
	Model textarea.Model
	Label string
}

// NewTextArea creates an unfocused text area with the given visible height.
func NewTextArea(label, placeholder string, height, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(height)
	if charLimit > 0 {
		ta.CharLimit = charLimit
	}
	return TextArea{Model: ta, Label: label}
}

// Focus focuses the area and returns the cursor blink command.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the area has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// SetWidth sets the editing width, excluding the border.
func (t *TextArea) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	t.Model.SetWidth(w)
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label above the bordered area.
func (t TextArea) View(st *theme.Styles) string {
	box := st.InputBlurred
	if t.Focused() {
		box = st.InputFocused
	}
	return st.Label.Render(t.Label) + "\n" + box.Render(t.Model.View())
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the text.
func (t *TextArea) Reset() {
	t.Model.Reset()
}
