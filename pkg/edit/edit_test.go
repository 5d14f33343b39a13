package edit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultList = []string{"low", "medium", "high", "critical"}

func TestToggleComplete(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- [ ] Flip me", "- [x] Flip me"},
		{"- [x] Flip me", "- [ ] Flip me"},
		{"- [X] upper", "- [ ] upper"},
		{"- [] empty box", "- [x] empty box"},
		{"  * [ ] nested [ ] twice", "  * [x] nested [ ] twice"},
		{"- no box", "- [x] no box"},
		{"12. numbered", "12. [x] numbered"},
		{"\u00a0\u00a0- nbsp indent", "\u00a0\u00a0- [x] nbsp indent"},
		{"plain line", "[x] plain line"},
		{"", "[x] "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToggleComplete(tt.in))
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	once := ToggleComplete("- [ ] Flip me")
	assert.Equal(t, "- [x] Flip me", once)
	assert.Equal(t, "- [ ] Flip me", ToggleComplete(once))
}

func TestChangePriority(t *testing.T) {
	t.Run("raise high to critical", func(t *testing.T) {
		line, name, err := ChangePriority("- [ ] ship it !high @ops", Up, defaultList)
		require.NoError(t, err)
		assert.Equal(t, "critical", name)
		assert.Equal(t, "- [ ] ship it !critical @ops", line)

		again, _, err := ChangePriority(line, Up, defaultList)
		assert.ErrorIs(t, err, ErrAlreadyHighest)
		assert.Equal(t, line, again, "line is left unchanged")
	})

	t.Run("lower", func(t *testing.T) {
		line, name, err := ChangePriority("task !Medium", Down, defaultList)
		require.NoError(t, err)
		assert.Equal(t, "low", name)
		assert.Equal(t, "task !low", line)

		_, _, err = ChangePriority(line, Down, defaultList)
		assert.ErrorIs(t, err, ErrAlreadyLowest)
	})

	t.Run("first marker only", func(t *testing.T) {
		line, _, err := ChangePriority("a !low b !high", Up, defaultList)
		require.NoError(t, err)
		assert.Equal(t, "a !medium b !high", line)
	})

	t.Run("no marker", func(t *testing.T) {
		_, _, err := ChangePriority("- [ ] nothing here", Up, defaultList)
		assert.ErrorIs(t, err, ErrNoPriority)
	})

	t.Run("unknown marker", func(t *testing.T) {
		_, _, err := ChangePriority("do it !urgent", Up, defaultList)
		var unknown *UnknownPriorityError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "urgent", unknown.Name)
		assert.Contains(t, err.Error(), "urgent")
	})

	t.Run("custom list", func(t *testing.T) {
		line, name, err := ChangePriority("x !p2", Up, []string{"p3", "p2", "p1"})
		require.NoError(t, err)
		assert.Equal(t, "p1", name)
		assert.Equal(t, "x !p1", line)
	})
}

func TestSetPriority(t *testing.T) {
	assert.Equal(t, "- [ ] task !high", SetPriority("- [ ] task", "high"))
	assert.Equal(t, "!low", SetPriority("   ", "low"))
}

func TestPriority(t *testing.T) {
	name, ok := Priority("fix !high-ish now")
	require.True(t, ok)
	assert.Equal(t, "high-ish", name)

	_, ok = Priority("wow!")
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"up": Up, " UP ": Up, "+": Up, "increase": Up, "down": Down, "-": Down} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
