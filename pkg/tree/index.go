package tree

import (
	"github.com/mattsolo1/grove-lists/pkg/models"
)

// Index is a precomputed hierarchy over a line-ordered collection. Build one
// per transformation and reuse it for every children query.
type Index struct {
	items    []models.Item
	parent   []int
	children [][]int
	roots    []int
	pos      map[int]int
}

// NewIndex derives the parent of every item in a single pass. The parent of X
// is the nearest preceding item shallower than X, provided it is exactly one
// level shallower; otherwise X has no parent.
func NewIndex(items []models.Item) *Index {
	sorted := byLine(items)
	idx := &Index{
		items:    sorted,
		parent:   make([]int, len(sorted)),
		children: make([][]int, len(sorted)),
		pos:      make(map[int]int, len(sorted)),
	}

	var stack []int
	for i, it := range sorted {
		idx.pos[it.LineNumber] = i
		idx.parent[i] = -1

		for len(stack) > 0 && sorted[stack[len(stack)-1]].Level >= it.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			p := stack[len(stack)-1]
			if sorted[p].Level == it.Level-1 {
				idx.parent[i] = p
				idx.children[p] = append(idx.children[p], i)
			}
		}
		stack = append(stack, i)
	}

	if len(sorted) > 0 {
		minLevel := sorted[0].Level
		for _, it := range sorted[1:] {
			minLevel = min(minLevel, it.Level)
		}
		for i, it := range sorted {
			if it.Level == minLevel {
				idx.roots = append(idx.roots, i)
			}
		}
	}
	return idx
}

// Len reports the number of indexed items.
func (x *Index) Len() int { return len(x.items) }

// Roots returns the items at the minimum level, in line order.
func (x *Index) Roots() []models.Item {
	return x.pick(x.roots)
}

// Lookup returns the indexed item on the given line.
func (x *Index) Lookup(lineNumber int) (models.Item, bool) {
	i, ok := x.pos[lineNumber]
	if !ok {
		return models.Item{}, false
	}
	return x.items[i], true
}

// Children returns the direct children of the item on parent's line.
func (x *Index) Children(parent models.Item) []models.Item {
	i, ok := x.pos[parent.LineNumber]
	if !ok {
		return nil
	}
	return x.pick(x.children[i])
}

func (x *Index) HasChildren(parent models.Item) bool {
	i, ok := x.pos[parent.LineNumber]
	return ok && len(x.children[i]) > 0
}

// Parent returns the direct parent of child, if any.
func (x *Index) Parent(child models.Item) (models.Item, bool) {
	i, ok := x.pos[child.LineNumber]
	if !ok || x.parent[i] < 0 {
		return models.Item{}, false
	}
	return x.items[x.parent[i]], true
}

func (x *Index) pick(positions []int) []models.Item {
	if len(positions) == 0 {
		return nil
	}
	out := make([]models.Item, len(positions))
	for j, i := range positions {
		out[j] = x.items[i]
	}
	return out
}
