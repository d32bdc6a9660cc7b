package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"discard/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle  = theme.ModalBox
)

// RenderHelpPopup renders the sections in a box placed in the middle of a
// width x height area.
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title) + "\n")

	for _, section := range sections {
		b.WriteString("\n" + theme.Subtitle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + helpKeyStyle.Width(12).Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}

	b.WriteString("\n" + theme.ModalHelp.Render("Press any key to close"))

	return Overlay(helpBoxStyle.Render(b.String()), width, height)
}
