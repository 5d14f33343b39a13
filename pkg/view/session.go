package view

import (
	"strings"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Session holds the active keyword filter and mode selections for one
// running host. It is not safe for concurrent use.
type Session struct {
	keyword    string
	filter     models.FilterMode
	sort       models.SortMode
	group      models.GroupMode
	priorities []string
}

// NewSession returns a session showing all items in source order, ungrouped.
func NewSession(priorities []string) *Session {
	return &Session{
		filter:     models.FilterAll,
		sort:       models.SortNone,
		group:      models.GroupNone,
		priorities: models.NormalizePriorities(priorities),
	}
}

// SetKeyword sets the keyword filter. Surrounding whitespace is ignored and a
// blank keyword clears the filter.
func (s *Session) SetKeyword(keyword string) {
	s.keyword = strings.ToLower(strings.TrimSpace(keyword))
}

// Keyword returns the active keyword, lower-cased, or "" when none is set.
func (s *Session) Keyword() string { return s.keyword }

func (s *Session) ClearKeyword() { s.keyword = "" }

func (s *Session) SetFilterMode(m models.FilterMode) { s.filter = models.ParseFilterMode(string(m)) }
func (s *Session) SetSortMode(m models.SortMode)     { s.sort = models.ParseSortMode(string(m)) }
func (s *Session) SetGroupMode(m models.GroupMode)   { s.group = models.ParseGroupMode(string(m)) }

func (s *Session) FilterMode() models.FilterMode { return s.filter }
func (s *Session) SortMode() models.SortMode     { return s.sort }
func (s *Session) GroupMode() models.GroupMode   { return s.group }

// Priorities returns the ordered priority list used for sorting.
func (s *Session) Priorities() []string {
	return append([]string(nil), s.priorities...)
}

// Options snapshots the session state for Transform.
func (s *Session) Options() Options {
	return Options{
		Filter:     s.filter,
		Sort:       s.sort,
		Group:      s.group,
		Keyword:    s.keyword,
		Priorities: s.Priorities(),
	}
}

// Apply transforms items with the session state.
func (s *Session) Apply(items []models.Item) Groups {
	return Transform(items, s.Options())
}
