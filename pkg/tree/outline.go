// Package tree reconstructs the parent/child outline of a flat, leveled item
// list.
//
// An item X is a direct child of P when X is exactly one level deeper than P,
// follows P in line order, and no item between them sits at P's level or
// shallower. Outline applies that rule by re-scanning its items on every
// query; Index derives the same relation in one pass and answers from memory.
package tree

import (
	"slices"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Outline answers hierarchy queries against the collection it holds.
type Outline struct {
	items []models.Item
}

// NewOutline holds a line-ordered copy of items.
func NewOutline(items []models.Item) *Outline {
	return &Outline{items: byLine(items)}
}

// Items returns the held collection in line order.
func (o *Outline) Items() []models.Item {
	return slices.Clone(o.items)
}

// Len reports the number of held items.
func (o *Outline) Len() int { return len(o.items) }

// Roots returns the items at the minimum level of the collection.
func (o *Outline) Roots() []models.Item {
	return Roots(o.items)
}

// IsChild reports whether child is a direct child of parent within the
// held collection.
func (o *Outline) IsChild(child, parent models.Item) bool {
	return IsChildOf(o.items, child, parent)
}

// Children returns the direct children of parent in line order.
func (o *Outline) Children(parent models.Item) []models.Item {
	var out []models.Item
	for _, it := range o.items {
		if it.LineNumber <= parent.LineNumber {
			continue
		}
		if it.Level <= parent.Level {
			break
		}
		if it.Level == parent.Level+1 {
			out = append(out, it)
		}
	}
	return out
}

// HasChildren reports whether parent would render as expandable.
func (o *Outline) HasChildren(parent models.Item) bool {
	for _, it := range o.items {
		if it.LineNumber <= parent.LineNumber {
			continue
		}
		if it.Level <= parent.Level {
			return false
		}
		if it.Level == parent.Level+1 {
			return true
		}
	}
	return false
}

// IsChildOf applies the direct-child rule to child and parent, using items
// as the collection that may interrupt the span between them. items need not
// be sorted.
func IsChildOf(items []models.Item, child, parent models.Item) bool {
	if child.Level != parent.Level+1 || child.LineNumber <= parent.LineNumber {
		return false
	}
	for _, it := range items {
		if it.LineNumber > parent.LineNumber && it.LineNumber < child.LineNumber && it.Level <= parent.Level {
			return false
		}
	}
	return true
}

// Roots returns the items of items whose level equals the minimum level
// present, in their given order. An empty collection has no roots.
func Roots(items []models.Item) []models.Item {
	if len(items) == 0 {
		return nil
	}
	minLevel := items[0].Level
	for _, it := range items[1:] {
		minLevel = min(minLevel, it.Level)
	}
	var out []models.Item
	for _, it := range items {
		if it.Level == minLevel {
			out = append(out, it)
		}
	}
	return out
}

func byLine(items []models.Item) []models.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.Item) int {
		return a.LineNumber - b.LineNumber
	})
	return sorted
}
