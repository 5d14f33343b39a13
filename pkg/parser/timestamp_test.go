package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"iso zulu", "2024-01-15T10:30:00Z deploy", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"iso offset", "  2024-01-15T10:30:00+01:00 x", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"iso local", "2024-01-15T10:30:00 x", time.Date(2024, 1, 15, 10, 30, 0, 0, loc)},
		{"iso minutes", "2024-01-15T10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, loc)},
		{"ymd space", "2024-01-15 10:30 standup", time.Date(2024, 1, 15, 10, 30, 0, 0, loc)},
		{"ymd seconds fraction", "2024-01-15 10:30:05.250 x", time.Date(2024, 1, 15, 10, 30, 5, 250000000, loc)},
		{"slash", "2024/01/15 groceries", time.Date(2024, 1, 15, 0, 0, 0, 0, loc)},
		{"bare date", "2024-01-15 review", time.Date(2024, 1, 15, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.text, loc)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseTimestampMisses(t *testing.T) {
	for _, text := range []string{"", "   ", "hello world", "- [ ] buy milk", "#tag only"} {
		_, ok := ParseTimestamp(text, time.UTC)
		assert.False(t, ok, text)
	}
}

func TestParseTimestampNilLocation(t *testing.T) {
	got, ok := ParseTimestamp("2024/03/01", nil)
	require.True(t, ok)
	assert.Equal(t, time.Local, got.Location())
}
