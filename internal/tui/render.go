package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stagehand-dev/stagehand/internal/app"
	"github.com/stagehand-dev/stagehand/internal/git"
	"github.com/stagehand-dev/stagehand/internal/tui/components"
	"github.com/stagehand-dev/stagehand/internal/ui"
)

// View renders the entire UI. This is a pure function — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch mode := m.state.Mode().(type) {
	case app.Preview:
		return m.renderPreview(mode)
	case app.Help:
		return m.renderHelp()
	}
	return m.renderMain()
}

// ── Main screen ──────────────────────────────────────────────────────────────

// renderMain draws the file list (optionally split with the inline preview
// panel), the mode-specific bottom bar, and the status bar.
func (m Model) renderMain() string {
	// height - title(1) - bottom bar(1) - status bar(1)
	contentH := m.height - 3
	if contentH < 1 {
		contentH = 1
	}

	title := m.styles.Title.Render(" Changes")
	var content string
	if m.state.ShowPreviewPanel() && m.width >= 60 {
		listW := m.width / 2
		list := m.renderFileList(listW-2, contentH)
		panel := m.renderPanelPreview(m.width-listW-2, contentH)
		content = lipgloss.JoinHorizontal(lipgloss.Top, list, panel)
	} else {
		content = m.renderFileList(m.width, contentH)
	}
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)

	bottom := m.renderBottomBar()

	bar := components.RenderStatusBar(m.styles, components.StatusBarData{
		RepoName:  m.state.RepoName(),
		Branch:    m.state.Branch(),
		FileCount: len(m.state.Entries()),
		Malformed: m.state.MalformedCount(),
		Message:   m.state.StatusMessage(),
		IsError:   looksLikeError(m.state.StatusMessage()),
	}, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, title, content, bottom, bar)
}

// renderFileList draws the status entries with the selection highlighted.
func (m Model) renderFileList(width, height int) string {
	entries := m.state.Entries()
	if len(entries) == 0 {
		return ui.PlaceCentre(width, height, m.styles.Muted.Render("Working tree clean"))
	}

	selected, hasSelection := m.state.Selected()

	// Keep the selection visible when the list is taller than the window.
	first := 0
	if hasSelection && selected >= height {
		first = selected - height + 1
	}

	var b strings.Builder
	for i := first; i < len(entries) && i-first < height; i++ {
		row := m.renderFileRow(entries[i], width-2)
		if hasSelection && i == selected {
			b.WriteString(m.styles.ListSelected.Render("▸" + row))
		} else {
			b.WriteString(m.styles.ListItem.Render(row))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFileRow formats a single entry: status label, flags, path.
func (m Model) renderFileRow(e git.StatusEntry, width int) string {
	label, style := m.entryBadge(e)
	flags := string([]byte{byte(e.IndexFlag), byte(e.WorktreeFlag)})
	path := ui.Truncate(e.Path, width-14)
	return style.Render(ui.PadRight(label, 10)) + m.styles.Muted.Render(flags) + " " + path
}

// entryBadge picks the display label and color for an entry. Staged wins
// over the per-flag classification, with PARTIAL flagged separately so a
// half-staged file is never mistaken for a fully staged one.
func (m Model) entryBadge(e git.StatusEntry) (string, lipgloss.Style) {
	switch {
	case e.PartiallyStaged():
		return "PARTIAL", m.styles.FileModified
	case e.Staged():
		return "STAGED", m.styles.FileStaged
	case e.WorktreeFlag == git.StatusUntracked:
		return "UNTRACKED", m.styles.FileUntracked
	case e.WorktreeFlag == git.StatusDeleted:
		return "DELETED", m.styles.FileDeleted
	case e.WorktreeFlag == git.StatusAdded:
		return "ADDED", m.styles.FileAdded
	default:
		return "MODIFIED", m.styles.FileModified
	}
}

// renderPanelPreview draws the inline diff panel beside the file list.
func (m Model) renderPanelPreview(width, height int) string {
	content := m.state.PanelPreview()
	if content == "" {
		content = "No preview available"
	}

	lines := strings.Split(renderDiffColored(m.styles, content), "\n")
	innerH := height - 2
	scroll := m.state.PreviewScroll()
	scroll.Clamp(len(lines), innerH)
	visible := ui.Window(lines, scroll.Offset(), innerH)

	body := strings.Join(visible, "\n")
	return m.styles.Panel.Width(width - 2).Height(innerH).Render(body)
}

// renderBottomBar draws the line above the status bar: the active text
// input, the pending confirmation, or the key hints.
func (m Model) renderBottomBar() string {
	switch mode := m.state.Mode().(type) {
	case app.CommitEntry:
		return m.styles.InputBar.Render("Commit: " + m.state.CommitInputView())
	case app.StashEntry:
		return m.styles.InputBar.Render("Stash: " + m.state.StashInputView())
	case app.Confirm:
		return m.styles.ConfirmBar.Render(mode.Message)
	}
	hints := []string{"s stage", "a all", "c commit", "t stash", "d diff", "h help", "q quit"}
	return m.styles.HelpBar.Render(strings.Join(hints, "  "))
}

// ── Preview screen ───────────────────────────────────────────────────────────

// renderPreview draws the full-screen diff with line numbers.
func (m Model) renderPreview(p app.Preview) string {
	header := m.styles.PanelTitle.Render("Preview: "+p.SourcePath) +
		m.styles.Muted.Render("  (j/k scroll, q close)")

	content := p.Content
	if strings.TrimSpace(content) == "" {
		content = "No preview available"
	}

	raw := strings.Split(content, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		num := m.styles.DiffLineNum.Render(fmt.Sprintf("%d", i+1))
		lines[i] = num + " " + colorDiffLine(m.styles, line)
	}

	bodyH := m.height - 2
	if bodyH < 1 {
		bodyH = 1
	}
	scroll := m.state.PreviewScroll()
	scroll.Clamp(len(lines), bodyH)
	visible := ui.Window(lines, scroll.Offset(), bodyH)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(visible, "\n"),
	)
}

// ── Help screen ──────────────────────────────────────────────────────────────

func (m Model) renderHelp() string {
	lines := components.HelpLines(m.styles, m.width)
	bodyH := m.height - 1
	if bodyH < 1 {
		bodyH = 1
	}
	scroll := m.state.HelpScroll()
	scroll.Clamp(len(lines), bodyH)
	visible := ui.Window(lines, scroll.Offset(), bodyH)
	return strings.Join(visible, "\n")
}

// ── Diff colouring ───────────────────────────────────────────────────────────

// renderDiffColored applies syntax colouring to a unified diff string.
func renderDiffColored(styles ui.Styles, diff string) string {
	if diff == "" {
		return styles.Muted.Render("No diff content")
	}
	var b strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		b.WriteString(colorDiffLine(styles, line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func colorDiffLine(styles ui.Styles, line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return styles.DiffHunkHeader.Render(line)
	case strings.HasPrefix(line, "+"):
		return styles.DiffAdded.Render(line)
	case strings.HasPrefix(line, "-"):
		return styles.DiffRemoved.Render(line)
	case strings.HasPrefix(line, "diff "):
		return styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "index "):
		return styles.Muted.Render(line)
	default:
		return styles.DiffContext.Render(line)
	}
}

// looksLikeError classifies a status message for the bar's color choice.
// Gateway failures surface verbatim as "git <args>: <stderr>: ..." lines.
func looksLikeError(msg string) bool {
	return strings.HasPrefix(msg, "git ") && strings.Contains(msg, ": ") ||
		strings.HasPrefix(msg, "Preview error:")
}
