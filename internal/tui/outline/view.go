package outline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"
	"github.com/muesli/reflow/truncate"
)

var (
	headerStyle    = theme.DefaultTheme.Header
	groupStyle     = theme.DefaultTheme.Info.Bold(true)
	selectedStyle  = theme.DefaultTheme.Selected
	completedStyle = theme.DefaultTheme.Muted.Strikethrough(true)
	mutedStyle     = theme.DefaultTheme.Muted
	errorStyle     = lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Red)
	cursorStyle    = theme.DefaultTheme.Highlight
)

func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}
	if m.list == nil && m.err == nil {
		return "Loading..."
	}

	var footer string
	switch {
	case m.searching:
		footer = m.filterInput.View()
	case m.err != nil:
		footer = errorStyle.Render(m.err.Error())
	case m.status != "":
		footer = mutedStyle.Render(m.status)
	default:
		footer = m.help.View(m.keys)
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderRows(),
		"",
		footer,
	)
}

func (m Model) renderHeader() string {
	session := m.service.Session
	title := headerStyle.Render(filepath.Base(m.path))

	parts := []string{"filter: " + string(session.FilterMode())}
	if m.viewMode == groupsView {
		parts = append(parts, "sort: "+string(session.SortMode()), "group: "+string(session.GroupMode()))
	}
	if kw := session.Keyword(); kw != "" {
		parts = append(parts, fmt.Sprintf("keyword: %q", kw))
	}
	if m.list != nil && m.list.Result.ExceedsLimit {
		parts = append(parts, fmt.Sprintf("%d lines", m.list.Result.LineCount))
	}
	return title + "  " + mutedStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("No items found.")
	}

	var b strings.Builder
	end := min(m.scrollOffset+m.viewportHeight(), len(m.rows))
	for i := m.scrollOffset; i < end; i++ {
		r := m.rows[i]
		if r.isHeader() {
			b.WriteString(groupStyle.Render(r.header))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▶ ")
		}

		fold := "  "
		if r.hasChildren {
			if m.collapsed[r.item.LineNumber] {
				fold = "▶ "
			} else {
				fold = "▼ "
			}
		}

		text := strings.TrimSpace(r.item.Text)
		switch {
		case r.item.Completed:
			text = completedStyle.Render(text)
		case i == m.cursor:
			text = selectedStyle.Render(text)
		}

		line := fmt.Sprintf("%s%s%s%s", cursor, strings.Repeat("  ", r.depth), fold, text)
		if m.width > 0 {
			line = truncate.StringWithTail(line, uint(m.width), "…")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.rows) > m.viewportHeight() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%d-%d of %d)", m.scrollOffset+1, end, len(m.rows))))
	}
	return strings.TrimRight(b.String(), "\n")
}
