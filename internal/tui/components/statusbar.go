package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stagehand-dev/stagehand/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	RepoName  string
	Branch    string
	FileCount int
	Malformed int
	Message   string // transient operation result or error
	IsError   bool
}

// RenderStatusBar renders the bottom status bar: repo@branch and the file
// count on the left, the last operation message on the right.
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sep := lipgloss.NewStyle().Foreground(t.Border).Faint(true).Render(" │ ")

	repo := lipgloss.NewStyle().Foreground(t.TextSubtle).Render(data.RepoName)
	branch := styles.BranchName.Render(" " + data.Branch)
	left := " " + repo + lipgloss.NewStyle().Foreground(t.TextSubtle).Render("@") + branch

	if width >= 40 {
		count := fmt.Sprintf("%d files", data.FileCount)
		if data.FileCount == 1 {
			count = "1 file"
		}
		left += sep + styles.Muted.Render(count)
		if data.Malformed > 0 {
			left += sep + styles.Warning.Render(fmt.Sprintf("%d unparsed", data.Malformed))
		}
	}

	var right string
	if data.Message != "" {
		fg := t.Primary
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(ui.Truncate(data.Message, width/2)) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
		right = ""
	}

	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
