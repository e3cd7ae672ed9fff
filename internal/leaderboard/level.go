package leaderboard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// levelPattern tolerates the label variants seen in the wild: "Level 1",
// "level-2", "LEVEL3", "level_4", "level.5", "Level  2", with surrounding
// text allowed.
var levelPattern = regexp.MustCompile(`(?i)level[\s\-_.]*(\d+)`)

// NormalizeLevel extracts a canonical level token ("level-<digits>") from a
// raw label. It returns "" when the label does not encode a level.
func NormalizeLevel(label string) string {
	m := levelPattern.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	return "level-" + m[1]
}

// PointTable maps canonical level tokens to point values. Levels absent from
// the table score 0.
type PointTable map[string]int

// DefaultPointTable returns the standard program scoring
func DefaultPointTable() PointTable {
	return PointTable{
		"level-1": 3,
		"level-2": 7,
		"level-3": 10,
	}
}

// ParsePointTable reads a "level-1:3,level-2:7" definition into a point
// table. Keys are normalized, so "Level 1:3" and "level-1:3" are equivalent.
// An empty definition returns the default table.
func ParsePointTable(definition string) (PointTable, error) {
	if strings.TrimSpace(definition) == "" {
		return DefaultPointTable(), nil
	}

	table := PointTable{}
	for _, pair := range strings.Split(definition, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid point table entry %q, want level:points", pair)
		}
		level := NormalizeLevel(key)
		if level == "" {
			return nil, fmt.Errorf("invalid level in point table entry %q", pair)
		}
		points, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || points < 0 {
			return nil, fmt.Errorf("invalid points in point table entry %q", pair)
		}
		table[level] = points
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("point table definition %q has no entries", definition)
	}
	return table, nil
}

// Points resolves a canonical level token to its point value
func (t PointTable) Points(level string) int {
	return t[level]
}

// Best selects the scoring level for one item's labels: among labels that
// normalize to a level, the one with the highest point value wins; equal
// values keep the label seen first. The second return is the point value,
// 0 when the chosen level is not in the table.
func (t PointTable) Best(labels []string) (string, int) {
	best := ""
	bestPoints := 0
	for _, label := range labels {
		level := NormalizeLevel(label)
		if level == "" {
			continue
		}
		points := t.Points(level)
		if best == "" || points > bestPoints {
			best = level
			bestPoints = points
		}
	}
	return best, bestPoints
}

// HasProgramLabel reports whether any label contains the program marker,
// case-insensitively
func HasProgramLabel(labels []string, marker string) bool {
	marker = strings.ToLower(marker)
	for _, label := range labels {
		if strings.Contains(strings.ToLower(label), marker) {
			return true
		}
	}
	return false
}
