package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ReportHeaders are the leaderboard column titles, in output order
var ReportHeaders = []string{
	"Rank",
	"GitHub Username",
	"Pull Requests (link & level)",
	"Issue No. (link & level)",
	"PR Points",
	"Issue Points",
	"Total Points",
	"Levels",
}

// Report is the shaped leaderboard table. Cells holding strings that start
// with "=" are spreadsheet formulas and must be written in formula mode.
type Report struct {
	Headers []string
	Rows    [][]interface{}
}

// Emitter writes a report to an external tabular store. The write replaces
// the whole table, so re-running the job never duplicates rows.
type Emitter interface {
	Emit(ctx context.Context, report *Report) error
}

// BuildReport sorts contributors by total points descending (stable on
// discovery order) and shapes one row per contributor with a 1-based rank.
func BuildReport(contributors []*Contributor) *Report {
	sorted := make([]*Contributor, len(contributors))
	copy(sorted, contributors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints() > sorted[j].TotalPoints()
	})

	rows := make([][]interface{}, 0, len(sorted))
	for i, contributor := range sorted {
		rows = append(rows, []interface{}{
			i + 1,
			contributor.Username,
			joinDisplays(contributor.PullRequests),
			joinDisplays(contributor.Issues),
			contributor.PRPoints,
			contributor.IssuePoints,
			contributor.TotalPoints(),
			strings.Join(contributor.LevelsSeen, ", "),
		})
	}

	return &Report{
		Headers: ReportHeaders,
		Rows:    rows,
	}
}

// itemDisplay renders one contribution as a HYPERLINK formula, annotated
// with its level and points when the item carries a level label
func itemDisplay(scored ScoredItem) string {
	link := fmt.Sprintf("=HYPERLINK(%q,%q)", scored.Item.URL, fmt.Sprintf("#%d", scored.Item.Number))
	if scored.Level == "" {
		return link
	}
	return fmt.Sprintf("%s & %q", link, fmt.Sprintf(" (%s - %dpts)", scored.Level, scored.Points))
}

func joinDisplays(items []ScoredItem) string {
	displays := make([]string, 0, len(items))
	for _, item := range items {
		displays = append(displays, itemDisplay(item))
	}
	return strings.Join(displays, ", ")
}
