package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattsolo1/grove-lists/pkg/models"
)

func TestSessionKeyword(t *testing.T) {
	s := NewSession(nil)
	assert.Equal(t, "", s.Keyword())

	s.SetKeyword("  Apple ")
	assert.Equal(t, "apple", s.Keyword())

	s.SetKeyword("   ")
	assert.Equal(t, "", s.Keyword())

	s.SetKeyword("pie")
	s.ClearKeyword()
	assert.Equal(t, "", s.Keyword())
}

func TestSessionModes(t *testing.T) {
	s := NewSession([]string{"p2", "p1"})
	assert.Equal(t, models.FilterAll, s.FilterMode())
	assert.Equal(t, models.SortNone, s.SortMode())
	assert.Equal(t, models.GroupNone, s.GroupMode())

	s.SetFilterMode(models.FilterCompleted)
	s.SetSortMode("alpha")
	s.SetGroupMode("bogus")

	opts := s.Options()
	assert.Equal(t, models.FilterCompleted, opts.Filter)
	assert.Equal(t, models.SortAlpha, opts.Sort)
	assert.Equal(t, models.GroupNone, opts.Group)
	assert.Equal(t, []string{"p2", "p1"}, opts.Priorities)

	opts.Priorities[0] = "changed"
	assert.Equal(t, []string{"p2", "p1"}, s.Priorities())
}

func TestSessionApply(t *testing.T) {
	s := NewSession(nil)
	s.SetKeyword("FOOD")
	s.SetGroupMode(models.GroupTag)

	g := s.Apply(sample())
	assert.Equal(t, []string{"food", "yellow"}, g.Labels())
}

func TestDefaultPriorityFallback(t *testing.T) {
	assert.Equal(t, models.DefaultPriorities, NewSession([]string{""}).Priorities())
	assert.Equal(t, map[string]int{"low": 0, "medium": 1, "high": 2, "critical": 3}, PriorityRanks(nil))
}
