package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// History entries
	CommandStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Debug representation
	ContentStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	NullStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Italic(true)

	MetaStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// RenderDebug renders the debug representation of s with colors
func RenderDebug(s dynstr.String) string {
	content := NullStyle.Render("NULL")
	if !s.IsNil() {
		content = ContentStyle.Render(s.String())
	}
	return MetaStyle.Render("[") + content +
		MetaStyle.Render(fmt.Sprintf(", size = %d, cap = %d]", s.Len(), s.Cap()))
}

// RenderError renders err with its error code
func RenderError(err error) string {
	return ErrorMessageStyle.Render(fmt.Sprintf("%s: %s", mdwerror.GetCode(err), err.Error()))
}

// RenderHelp renders a help line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
