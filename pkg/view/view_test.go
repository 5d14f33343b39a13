package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/parser"
)

func parse(t *testing.T, name, content string) []models.Item {
	t.Helper()
	k := parser.DefaultSelector().Select(name)
	require.NotEqual(t, parser.KindUnsupported, k)
	return k.Parse(parser.NewDocument(name, content)).Items
}

func lines(items []models.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.LineNumber
	}
	return out
}

func sample() []models.Item {
	return []models.Item{
		{LineNumber: 0, Text: "banana", Priority: "high", Project: "fruit", Tags: []string{"food", "yellow"}},
		{LineNumber: 1, Text: "Apple", Completed: true, Priority: "low", Tags: []string{"food"}},
		{LineNumber: 2, Text: "cherry", Priority: "urgent", Project: "fruit"},
		{LineNumber: 3, Text: "date", Completed: true},
		{LineNumber: 4, Text: "elderberry", Priority: "HIGH", Project: "berries", Tags: []string{"yellow", "yellow"}},
	}
}

func TestFilterIncompleteScenario(t *testing.T) {
	items := parse(t, "test-filter.tasks", "- [ ] First task !high\n- [x] Done task\n- [ ] Second task @proj")
	require.Len(t, items, 3)

	groups := Transform(items, Options{Filter: models.FilterIncomplete})
	got, ok := groups.Get(LabelAllItems)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, lines(got))
}

func TestKeywordFilterScenario(t *testing.T) {
	items := parse(t, "test-keyword.txt", "First line with apple\nAnother line with Apple pie\nNo match here")

	got := Filter(items, models.FilterAll, "apple")
	assert.Equal(t, []int{0, 1}, lines(got))
}

func TestFilter(t *testing.T) {
	items := sample()

	t.Run("all is identity", func(t *testing.T) {
		assert.Equal(t, items, Filter(items, models.FilterAll, ""))
	})

	t.Run("completion", func(t *testing.T) {
		assert.Equal(t, []int{0, 2, 4}, lines(Filter(items, models.FilterIncomplete, "")))
		assert.Equal(t, []int{1, 3}, lines(Filter(items, models.FilterCompleted, "")))
	})

	t.Run("invalid mode passes everything", func(t *testing.T) {
		assert.Len(t, Filter(items, models.FilterMode("nope"), ""), len(items))
	})

	t.Run("keyword matches tags and project", func(t *testing.T) {
		assert.Equal(t, []int{0, 4}, lines(Filter(items, models.FilterAll, "YELLOW")))
		assert.Equal(t, []int{4}, lines(Filter(items, models.FilterAll, "berr")))
		assert.Equal(t, []int{0, 2}, lines(Filter(items, models.FilterAll, "fru")))
	})

	t.Run("keyword after completion filter", func(t *testing.T) {
		assert.Equal(t, []int{1}, lines(Filter(items, models.FilterCompleted, "food")))
	})

	t.Run("input untouched", func(t *testing.T) {
		before := sample()
		_ = Filter(items, models.FilterCompleted, "x")
		assert.Equal(t, before, items)
	})
}

func TestSort(t *testing.T) {
	items := sample()

	t.Run("none restores line order", func(t *testing.T) {
		shuffled := []models.Item{items[3], items[0], items[4], items[2], items[1]}
		assert.Equal(t, []int{0, 1, 2, 3, 4}, lines(Sort(shuffled, models.SortNone, nil)))
		assert.Equal(t, []int{3, 0, 4, 2, 1}, lines(shuffled), "input must not be reordered")
	})

	t.Run("unknown mode behaves like none", func(t *testing.T) {
		shuffled := []models.Item{items[2], items[0]}
		assert.Equal(t, []int{0, 2}, lines(Sort(shuffled, models.SortMode("weird"), nil)))
	})

	t.Run("alpha is locale aware", func(t *testing.T) {
		got := Sort(items, models.SortAlpha, nil)
		assert.Equal(t, []string{"Apple", "banana", "cherry", "date", "elderberry"}, texts(got))
	})

	t.Run("completion is stable", func(t *testing.T) {
		assert.Equal(t, []int{0, 2, 4, 1, 3}, lines(Sort(items, models.SortCompletion, nil)))
	})

	t.Run("priority uses configured order", func(t *testing.T) {
		got := Sort(items, models.SortPriority, []string{"low", "medium", "high", "critical"})
		// low(1), high(0), HIGH(4), then unranked urgent(2) and none(3) in prior order.
		assert.Equal(t, []int{1, 0, 4, 2, 3}, lines(got))
	})

	t.Run("priority with custom list", func(t *testing.T) {
		got := Sort(items, models.SortPriority, []string{"urgent", "high"})
		assert.Equal(t, []int{2, 0, 4, 1, 3}, lines(got))
	})

	t.Run("cardinality preserved", func(t *testing.T) {
		for _, m := range []models.SortMode{models.SortNone, models.SortAlpha, models.SortCompletion, models.SortPriority} {
			assert.ElementsMatch(t, items, Sort(items, m, nil), string(m))
		}
	})
}

func TestGroup(t *testing.T) {
	items := sample()

	t.Run("none", func(t *testing.T) {
		g := Group(items, models.GroupNone)
		require.Len(t, g, 1)
		assert.Equal(t, LabelAllItems, g[0].Label)
		assert.Equal(t, items, g[0].Items)
	})

	t.Run("invalid mode degrades to none", func(t *testing.T) {
		assert.Equal(t, []string{LabelAllItems}, Group(items, models.GroupMode("x")).Labels())
	})

	t.Run("priority", func(t *testing.T) {
		g := Group(items, models.GroupPriority)
		assert.Equal(t, []string{"high", "low", "urgent", LabelNoPriority, "HIGH"}, g.Labels())
		assert.Len(t, g.Flatten(), len(items))
	})

	t.Run("project", func(t *testing.T) {
		g := Group(items, models.GroupProject)
		assert.Equal(t, []string{"fruit", LabelNoProject, "berries"}, g.Labels())
		fruit, _ := g.Get("fruit")
		assert.Equal(t, []int{0, 2}, lines(fruit))
		assert.Len(t, g.Flatten(), len(items))
	})

	t.Run("tag multi membership", func(t *testing.T) {
		g := Group(items, models.GroupTag)
		assert.Equal(t, []string{"food", "yellow", LabelNoTags}, g.Labels())

		food, _ := g.Get("food")
		assert.Equal(t, []int{0, 1}, lines(food))
		yellow, _ := g.Get("yellow")
		assert.Equal(t, []int{0, 4}, lines(yellow), "a repeated tag counts once")
		none, _ := g.Get(LabelNoTags)
		assert.Equal(t, []int{2, 3}, lines(none))
	})

	t.Run("missing label", func(t *testing.T) {
		_, ok := Group(items, models.GroupTag).Get("nope")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Group(nil, models.GroupTag))
		g := Group(nil, models.GroupNone)
		require.Len(t, g, 1)
		assert.Empty(t, g[0].Items)
	})
}

func TestTransformOrder(t *testing.T) {
	items := sample()
	g := Transform(items, Options{
		Filter:     models.FilterIncomplete,
		Sort:       models.SortPriority,
		Group:      models.GroupProject,
		Priorities: []string{"low", "high"},
	})

	// Sorted incomplete: high(0), HIGH(4), urgent(2); buckets in first-seen order.
	assert.Equal(t, []string{"fruit", "berries"}, g.Labels())
	fruit, _ := g.Get("fruit")
	assert.Equal(t, []int{0, 2}, lines(fruit))
}

func texts(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}
