// Package outline is an interactive terminal browser for a single list file.
// The outline view expands nodes on demand through the hierarchy index; the
// groups view shows the filtered, sorted and grouped items.
package outline

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/service"
	"github.com/mattsolo1/grove-lists/pkg/tree"
)

type viewMode int

const (
	outlineView viewMode = iota
	groupsView
)

// row is one rendered line.
type row struct {
	header      string // set for group headers in the groups view
	item        models.Item
	depth       int
	hasChildren bool
}

func (r row) isHeader() bool { return r.header != "" }

// ReloadedMsg carries a freshly parsed list, for example from a file watcher.
type ReloadedMsg struct {
	List *service.List
	Err  error
}

// editedMsg reports the outcome of a line edit.
type editedMsg struct {
	list   *service.List
	status string
	err    error
}

// Model is the bubbletea model for the outline TUI
type Model struct {
	service *service.Service
	path    string
	list    *service.List
	index   *tree.Index

	viewMode  viewMode
	rows      []row
	collapsed map[int]bool // keyed by line number

	cursor       int
	scrollOffset int
	width        int
	height       int

	keys        KeyMap
	help        help.Model
	filterInput textinput.Model
	searching   bool

	status string
	err    error
}

// New creates the model for path. Call Init to load the file.
func New(svc *service.Service, path string) Model {
	ti := textinput.New()
	ti.Placeholder = "keyword"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return Model{
		service:     svc,
		path:        path,
		collapsed:   make(map[int]bool),
		keys:        keys,
		help:        help.New(),
		filterInput: ti,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	list, err := m.service.Load(m.path)
	return ReloadedMsg{List: list, Err: err}
}

// setList installs a new parse and rebuilds the visible rows.
func (m *Model) setList(list *service.List) {
	m.list = list
	m.rebuild()
}

// rebuild re-derives the rows from the current list and session state,
// keeping the cursor on the same line when it is still visible.
func (m *Model) rebuild() {
	if m.list == nil {
		m.rows = nil
		return
	}

	currentLine := -1
	if r, ok := m.selected(); ok {
		currentLine = r.item.LineNumber
	}

	m.index = m.service.Outline(m.list)
	if m.viewMode == outlineView {
		m.rows = m.outlineRows()
	} else {
		m.rows = m.groupRows()
	}

	m.cursor = 0
	for i, r := range m.rows {
		if !r.isHeader() && r.item.LineNumber == currentLine {
			m.cursor = i
			break
		}
	}
	m.skipHeader(1)
	m.clampScroll()
}

func (m *Model) outlineRows() []row {
	var rows []row
	var walk func(items []models.Item, depth int)
	walk = func(items []models.Item, depth int) {
		for _, it := range items {
			hasChildren := m.index.HasChildren(it)
			rows = append(rows, row{item: it, depth: depth, hasChildren: hasChildren})
			if hasChildren && !m.collapsed[it.LineNumber] {
				walk(m.index.Children(it), depth+1)
			}
		}
	}
	walk(m.index.Roots(), 0)
	return rows
}

func (m *Model) groupRows() []row {
	var rows []row
	groups := m.service.View(m.list)
	showHeaders := m.service.Session.GroupMode() != models.GroupNone
	for _, g := range groups {
		if showHeaders {
			rows = append(rows, row{header: g.Label})
		}
		for _, it := range g.Items {
			rows = append(rows, row{item: it})
		}
	}
	return rows
}

func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	r := m.rows[m.cursor]
	return r, !r.isHeader()
}

// skipHeader moves the cursor off group header rows, preferring direction
// dir and falling back to the other way at the edge.
func (m *Model) skipHeader(dir int) {
	m.cursor = min(max(m.cursor, 0), max(len(m.rows)-1, 0))
	for i := m.cursor; i >= 0 && i < len(m.rows); i += dir {
		if !m.rows[i].isHeader() {
			m.cursor = i
			return
		}
	}
	for i := m.cursor; i >= 0 && i < len(m.rows); i -= dir {
		if !m.rows[i].isHeader() {
			m.cursor = i
			return
		}
	}
}

func (m Model) viewportHeight() int {
	// Header, spacing and footer take 6 lines.
	return max(m.height-6, 1)
}

func (m *Model) clampScroll() {
	h := m.viewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
