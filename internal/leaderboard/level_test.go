package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLevel(t *testing.T) {
	testCases := []struct {
		name     string
		label    string
		expected string
	}{
		{name: "Plain", label: "level-1", expected: "level-1"},
		{name: "Capitalized with space", label: "Level 2", expected: "level-2"},
		{name: "Double space", label: "Level  2", expected: "level-2"},
		{name: "Upper case no separator", label: "LEVEL3", expected: "level-3"},
		{name: "Underscore", label: "level_2", expected: "level-2"},
		{name: "Dot", label: "level.3", expected: "level-3"},
		{name: "Multi-digit preserved", label: "LEVEL-10", expected: "level-10"},
		{name: "Surrounding words", label: "gssoc level 2 extended", expected: "level-2"},
		{name: "Not a level", label: "good-first-issue", expected: ""},
		{name: "Empty", label: "", expected: ""},
		{name: "Level without digits", label: "level", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeLevel(tc.label))
		})
	}
}

func TestPointTable(t *testing.T) {
	table := DefaultPointTable()

	t.Run("Known levels", func(t *testing.T) {
		assert.Equal(t, 3, table.Points("level-1"))
		assert.Equal(t, 7, table.Points("level-2"))
		assert.Equal(t, 10, table.Points("level-3"))
	})

	t.Run("Unknown level scores zero", func(t *testing.T) {
		assert.Equal(t, 0, table.Points("level-10"))
		assert.Equal(t, 0, table.Points(""))
	})

	t.Run("Custom table", func(t *testing.T) {
		custom := PointTable{"level-1": 5}
		assert.Equal(t, 5, custom.Points("level-1"))
		assert.Equal(t, 0, custom.Points("level-2"))
	})
}

func TestParsePointTable(t *testing.T) {
	t.Run("Empty definition returns defaults", func(t *testing.T) {
		table, err := ParsePointTable("")
		assert.NoError(t, err)
		assert.Equal(t, DefaultPointTable(), table)
	})

	t.Run("Custom table", func(t *testing.T) {
		table, err := ParsePointTable("level-1:5, level-2:9,level-4:20")
		assert.NoError(t, err)
		assert.Equal(t, PointTable{"level-1": 5, "level-2": 9, "level-4": 20}, table)
	})

	t.Run("Keys are normalized", func(t *testing.T) {
		table, err := ParsePointTable("Level 1:4,LEVEL_2:8")
		assert.NoError(t, err)
		assert.Equal(t, PointTable{"level-1": 4, "level-2": 8}, table)
	})

	t.Run("Invalid entries", func(t *testing.T) {
		for _, definition := range []string{"level-1", "level-1:abc", "bug:3", "level-1:-2", ","} {
			_, err := ParsePointTable(definition)
			assert.Error(t, err, definition)
		}
	})
}

func TestPointTableBest(t *testing.T) {
	table := DefaultPointTable()

	testCases := []struct {
		name           string
		labels         []string
		expectedLevel  string
		expectedPoints int
	}{
		{
			name:           "Single level",
			labels:         []string{"gssoc", "level-2"},
			expectedLevel:  "level-2",
			expectedPoints: 7,
		},
		{
			name:           "Highest value wins regardless of order",
			labels:         []string{"level-1", "level-3"},
			expectedLevel:  "level-3",
			expectedPoints: 10,
		},
		{
			name:           "Highest value wins when listed first",
			labels:         []string{"level-3", "level-1"},
			expectedLevel:  "level-3",
			expectedPoints: 10,
		},
		{
			name:           "No level labels",
			labels:         []string{"gssoc", "bug"},
			expectedLevel:  "",
			expectedPoints: 0,
		},
		{
			name:           "Unknown level recorded with zero points",
			labels:         []string{"level-10"},
			expectedLevel:  "level-10",
			expectedPoints: 0,
		},
		{
			name:           "Known level beats unknown level",
			labels:         []string{"level-10", "level-1"},
			expectedLevel:  "level-1",
			expectedPoints: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, points := table.Best(tc.labels)
			assert.Equal(t, tc.expectedLevel, level)
			assert.Equal(t, tc.expectedPoints, points)
		})
	}
}

func TestHasProgramLabel(t *testing.T) {
	t.Run("Case-insensitive substring", func(t *testing.T) {
		assert.True(t, HasProgramLabel([]string{"GSSoC'25", "level-1"}, "gssoc"))
		assert.True(t, HasProgramLabel([]string{"gssoc-ext"}, "gssoc"))
	})

	t.Run("No qualifying label", func(t *testing.T) {
		assert.False(t, HasProgramLabel([]string{"bug", "level-1"}, "gssoc"))
		assert.False(t, HasProgramLabel(nil, "gssoc"))
	})
}
