// Package view filters, sorts and groups parsed items for display.
//
// The pipeline is strictly filter, then sort, then group. All functions are
// pure: they never modify their input slices.
package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Labels of the catch-all buckets.
const (
	LabelAllItems   = "All Items"
	LabelNoPriority = "No Priority"
	LabelNoProject  = "No Project"
	LabelNoTags     = "No Tags"
)

// unrankedPriority is the sort rank of missing or unrecognized priorities.
const unrankedPriority = 99

// Options selects the transformation applied by Transform.
type Options struct {
	Filter     models.FilterMode
	Sort       models.SortMode
	Group      models.GroupMode
	Keyword    string
	Priorities []string // lowest to highest; empty means models.DefaultPriorities
}

// Bucket is one labelled bucket of items.
type Bucket struct {
	Label string        `json:"label"`
	Items []models.Item `json:"items"`
}

// Groups is an ordered list of buckets, in first-seen key order.
type Groups []Bucket

// Get returns the items of the bucket labelled label.
func (g Groups) Get(label string) ([]models.Item, bool) {
	for _, grp := range g {
		if grp.Label == label {
			return grp.Items, true
		}
	}
	return nil, false
}

// Labels returns the bucket labels in order.
func (g Groups) Labels() []string {
	labels := make([]string, len(g))
	for i, grp := range g {
		labels[i] = grp.Label
	}
	return labels
}

// Flatten concatenates all buckets in order. With tag grouping an item can
// appear more than once.
func (g Groups) Flatten() []models.Item {
	var out []models.Item
	for _, grp := range g {
		out = append(out, grp.Items...)
	}
	return out
}

// Transform runs filter, sort and group over items.
func Transform(items []models.Item, opts Options) Groups {
	filtered := Filter(items, opts.Filter, opts.Keyword)
	sorted := Sort(filtered, opts.Sort, opts.Priorities)
	return Group(sorted, opts.Group)
}

// Filter keeps items matching the completion mode and, when keyword is not
// blank, containing it case-insensitively in their text, a tag or the project.
func Filter(items []models.Item, mode models.FilterMode, keyword string) []models.Item {
	keyword = strings.ToLower(keyword)
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		switch mode {
		case models.FilterIncomplete:
			if item.Completed {
				continue
			}
		case models.FilterCompleted:
			if !item.Completed {
				continue
			}
		}
		if keyword != "" && !matchesKeyword(item, keyword) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesKeyword(item models.Item, keyword string) bool {
	if strings.Contains(strings.ToLower(item.Text), keyword) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return item.Project != "" && strings.Contains(strings.ToLower(item.Project), keyword)
}

// Sort returns a stably sorted copy of items. Unknown modes sort by line number.
func Sort(items []models.Item, mode models.SortMode, priorities []string) []models.Item {
	sorted := slices.Clone(items)

	switch mode {
	case models.SortAlpha:
		c := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.Item) int {
			return c.CompareString(a.Text, b.Text)
		})
	case models.SortCompletion:
		slices.SortStableFunc(sorted, func(a, b models.Item) int {
			switch {
			case a.Completed == b.Completed:
				return 0
			case a.Completed:
				return 1
			default:
				return -1
			}
		})
	case models.SortPriority:
		rank := PriorityRanks(priorities)
		slices.SortStableFunc(sorted, func(a, b models.Item) int {
			return priorityRank(rank, a) - priorityRank(rank, b)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b models.Item) int {
			return a.LineNumber - b.LineNumber
		})
	}
	return sorted
}

// PriorityRanks maps lower-cased priority names to their index in priorities.
func PriorityRanks(priorities []string) map[string]int {
	priorities = models.NormalizePriorities(priorities)
	rank := make(map[string]int, len(priorities))
	for i, p := range priorities {
		rank[strings.ToLower(p)] = i
	}
	return rank
}

func priorityRank(rank map[string]int, item models.Item) int {
	if item.Priority == "" {
		return unrankedPriority
	}
	if r, ok := rank[strings.ToLower(item.Priority)]; ok {
		return r
	}
	return unrankedPriority
}

// Group partitions sorted items into buckets. With GroupTag an item lands in
// one bucket per tag; every other mode puts it in exactly one bucket.
func Group(items []models.Item, mode models.GroupMode) Groups {
	switch mode {
	case models.GroupPriority, models.GroupProject, models.GroupTag:
	default:
		return Groups{{Label: LabelAllItems, Items: items}}
	}

	var groups Groups
	index := make(map[string]int)
	for _, item := range items {
		for _, key := range groupKeys(item, mode) {
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, Bucket{Label: key})
			}
			groups[i].Items = append(groups[i].Items, item)
		}
	}
	return groups
}

func groupKeys(item models.Item, mode models.GroupMode) []string {
	switch mode {
	case models.GroupPriority:
		if item.Priority == "" {
			return []string{LabelNoPriority}
		}
		return []string{item.Priority}
	case models.GroupProject:
		if item.Project == "" {
			return []string{LabelNoProject}
		}
		return []string{item.Project}
	default:
		if len(item.Tags) == 0 {
			return []string{LabelNoTags}
		}
		return uniqueTags(item.Tags)
	}
}

// uniqueTags drops repeated tags so an item joins each tag bucket once.
func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
