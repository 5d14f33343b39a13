package models

import "strings"

// FilterMode selects items by completion state.
type FilterMode string

const (
	FilterAll        FilterMode = "all"
	FilterIncomplete FilterMode = "incomplete"
	FilterCompleted  FilterMode = "completed"
)

// SortMode orders filtered items.
type SortMode string

const (
	SortNone       SortMode = "none"
	SortAlpha      SortMode = "alpha"
	SortCompletion SortMode = "completion"
	SortPriority   SortMode = "priority"
)

// GroupMode partitions sorted items into labelled buckets.
type GroupMode string

const (
	GroupNone     GroupMode = "none"
	GroupPriority GroupMode = "priority"
	GroupProject  GroupMode = "project"
	GroupTag      GroupMode = "tag"
)

// DefaultPriorities lists the built-in priority names from lowest to highest.
var DefaultPriorities = []string{"low", "medium", "high", "critical"}

// ParseFilterMode maps s to a FilterMode. Unknown values fall back to FilterAll.
func ParseFilterMode(s string) FilterMode {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case FilterIncomplete, FilterCompleted:
		return m
	default:
		return FilterAll
	}
}

// ParseSortMode maps s to a SortMode. Unknown values fall back to SortNone.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortAlpha, SortCompletion, SortPriority:
		return m
	default:
		return SortNone
	}
}

// ParseGroupMode maps s to a GroupMode. Unknown values fall back to GroupNone.
func ParseGroupMode(s string) GroupMode {
	switch m := GroupMode(strings.ToLower(strings.TrimSpace(s))); m {
	case GroupPriority, GroupProject, GroupTag:
		return m
	default:
		return GroupNone
	}
}

// NormalizePriorities returns priorities with blank entries dropped, or
// DefaultPriorities when nothing usable remains.
func NormalizePriorities(priorities []string) []string {
	var out []string
	for _, p := range priorities {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultPriorities...)
	}
	return out
}
