package outline

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-lists/pkg/edit"
	"github.com/mattsolo1/grove-lists/pkg/models"
)

var (
	filterCycle = []models.FilterMode{models.FilterAll, models.FilterIncomplete, models.FilterCompleted}
	sortCycle   = []models.SortMode{models.SortNone, models.SortAlpha, models.SortCompletion, models.SortPriority}
	groupCycle  = []models.GroupMode{models.GroupNone, models.GroupPriority, models.GroupProject, models.GroupTag}
)

func next[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case ReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.setList(msg.List)
		return m, nil

	case editedMsg:
		m.status = msg.status
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		if msg.list != nil {
			m.setList(msg.list)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.filterInput.Blur()
		m.service.Session.SetKeyword(m.filterInput.Value())
		m.rebuild()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.searching = false
		m.filterInput.Blur()
		m.filterInput.SetValue(m.service.Session.Keyword())
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	session := m.service.Session

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.skipHeader(-1)
		m.clampScroll()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.skipHeader(1)
		m.clampScroll()
	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.skipHeader(1)
		m.clampScroll()
	case key.Matches(msg, m.keys.GoToBottom):
		m.cursor = len(m.rows) - 1
		m.skipHeader(-1)
		m.clampScroll()
	case key.Matches(msg, m.keys.Fold):
		if r, ok := m.selected(); ok && r.hasChildren {
			m.collapsed[r.item.LineNumber] = !m.collapsed[r.item.LineNumber]
			m.rebuild()
		}
	case key.Matches(msg, m.keys.ToggleView):
		if m.viewMode == outlineView {
			m.viewMode = groupsView
		} else {
			m.viewMode = outlineView
		}
		m.rebuild()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.filterInput.SetValue(session.Keyword())
		return m, m.filterInput.Focus()
	case key.Matches(msg, m.keys.Filter):
		session.SetFilterMode(next(filterCycle, session.FilterMode()))
		m.status = "filter: " + string(session.FilterMode())
		m.rebuild()
	case key.Matches(msg, m.keys.Sort):
		session.SetSortMode(next(sortCycle, session.SortMode()))
		m.status = "sort: " + string(session.SortMode())
		m.rebuild()
	case key.Matches(msg, m.keys.Group):
		session.SetGroupMode(next(groupCycle, session.GroupMode()))
		m.status = "group: " + string(session.GroupMode())
		m.rebuild()
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(); ok {
			return m, m.toggleCmd(r.item.LineNumber)
		}
	case key.Matches(msg, m.keys.Raise):
		if r, ok := m.selected(); ok {
			return m, m.priorityCmd(r.item.LineNumber, edit.Up)
		}
	case key.Matches(msg, m.keys.Lower):
		if r, ok := m.selected(); ok {
			return m, m.priorityCmd(r.item.LineNumber, edit.Down)
		}
	}
	return m, nil
}

func (m Model) toggleCmd(line int) tea.Cmd {
	svc, path := m.service, m.path
	return func() tea.Msg {
		list, err := svc.ToggleComplete(path, line)
		return editedMsg{list: list, err: err}
	}
}

func (m Model) priorityCmd(line int, dir edit.Direction) tea.Cmd {
	svc, path := m.service, m.path
	return func() tea.Msg {
		list, name, err := svc.ChangePriority(path, line, dir)
		var unknown *edit.UnknownPriorityError
		switch {
		case errors.Is(err, edit.ErrAlreadyHighest):
			return editedMsg{status: "Already at highest priority"}
		case errors.Is(err, edit.ErrAlreadyLowest):
			return editedMsg{status: "Already at lowest priority"}
		case errors.Is(err, edit.ErrNoPriority):
			return editedMsg{status: "No priority marker on this line"}
		case errors.As(err, &unknown):
			return editedMsg{status: fmt.Sprintf("Current priority %q not found in configured priorities", unknown.Name)}
		case err != nil:
			return editedMsg{err: err}
		}
		return editedMsg{list: list, status: "Priority changed to " + name}
	}
}
