package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stagehand-dev/stagehand/internal/ui"
)

// HelpEntry is a single key-description pair for the help screen.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpSection groups related bindings under a heading.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpSections returns the keybinding reference in display order.
func HelpSections() []HelpSection {
	return []HelpSection{
		{"Navigation", []HelpEntry{
			{"j / ↓", "Move down (wraps)"},
			{"k / ↑", "Move up (wraps)"},
		}},
		{"Staging", []HelpEntry{
			{"s", "Stage / unstage selected file"},
			{"a", "Stage / unstage all files"},
		}},
		{"Commit & Stash", []HelpEntry{
			{"c", "Commit staged changes"},
			{"t", "Stash changes (message optional)"},
			{"l", "List stashes"},
			{"p", "Apply latest stash"},
		}},
		{"Preview", []HelpEntry{
			{"d", "Full-screen diff for selected file"},
			{"v", "Toggle inline preview panel"},
			{"j / k", "Scroll (in preview and help)"},
		}},
		{"General", []HelpEntry{
			{"r", "Refresh"},
			{"h / ?", "Toggle this help"},
			{"esc", "Cancel input / leave screen"},
			{"q / ctrl+c", "Quit"},
		}},
	}
}

// HelpLines flattens the help sections to styled lines so the caller can
// window them with a scroll offset.
func HelpLines(styles ui.Styles, width int) []string {
	t := styles.Theme

	titleStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(14).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	header := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render("stagehand — keybindings")

	lines := []string{header, ""}
	for _, section := range HelpSections() {
		lines = append(lines, titleStyle.Render(section.Title))
		for _, e := range section.Entries {
			lines = append(lines, "  "+keyStyle.Render(e.Key)+"  "+descStyle.Render(e.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styles.Muted.Render(strings.Repeat(" ", 2)+"q or esc to close"))
	return lines
}
