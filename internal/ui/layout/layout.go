package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnsense/internal/settings"
	"github.com/abhisek/learnsense/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20
)

// AppName is shown at the left of the header.
const AppName = "LearnSense"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(st *theme.Styles, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(st.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// ThemeIndicator labels the active theme and its toggle key.
func ThemeIndicator(st *theme.Styles) string {
	icon := "☾ Dark"
	if st.Theme == settings.ThemeLight {
		icon = "☀ Light"
	}
	return lipgloss.NewStyle().Foreground(st.Accent).Render(icon) +
		lipgloss.NewStyle().Foreground(st.TextDim).Render("  ^T")
}

// RenderHeader renders the application header bar.
func RenderHeader(st *theme.Styles, title string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(st.Primary).
		Bold(true).
		Render("  " + AppName)

	center := lipgloss.NewStyle().
		Foreground(st.Text).
		Render(title)

	right := ThemeIndicator(st)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return st.Header.Width(width).Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(st *theme.Styles, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(st.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(st.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return st.Footer.Width(width).Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
