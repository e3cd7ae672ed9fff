package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildContributors(t *testing.T, items []Item) []*Contributor {
	t.Helper()
	agg := NewAggregator(DefaultPointTable())
	agg.AddAll(items)
	return agg.Contributors()
}

func TestBuildReportRanking(t *testing.T) {
	contributors := buildContributors(t, []Item{
		{Number: 1, Kind: KindPullRequest, Author: "bob", Labels: []string{"level-1"}, URL: "https://github.com/o/r/pull/1"},
		{Number: 2, Kind: KindPullRequest, Author: "alice", Labels: []string{"level-3"}, URL: "https://github.com/o/r/pull/2"},
	})

	report := BuildReport(contributors)
	assert.Equal(t, ReportHeaders, report.Headers)
	assert.Len(t, report.Rows, 2)

	assert.Equal(t, 1, report.Rows[0][0])
	assert.Equal(t, "alice", report.Rows[0][1])
	assert.Equal(t, 2, report.Rows[1][0])
	assert.Equal(t, "bob", report.Rows[1][1])

	for i := 1; i < len(report.Rows); i++ {
		previous := report.Rows[i-1][6].(int)
		current := report.Rows[i][6].(int)
		assert.GreaterOrEqual(t, previous, current)
	}
}

func TestBuildReportStableTieBreak(t *testing.T) {
	contributors := buildContributors(t, []Item{
		{Number: 1, Kind: KindPullRequest, Author: "first", Labels: []string{"level-2"}},
		{Number: 2, Kind: KindPullRequest, Author: "second", Labels: []string{"level-2"}},
	})

	report := BuildReport(contributors)
	assert.Equal(t, "first", report.Rows[0][1])
	assert.Equal(t, "second", report.Rows[1][1])
}

func TestBuildReportRow(t *testing.T) {
	contributors := buildContributors(t, []Item{
		{Number: 12, Kind: KindPullRequest, Author: "alice", Labels: []string{"gssoc", "level-2"}, URL: "https://github.com/o/r/pull/12"},
		{Number: 7, Kind: KindIssue, Author: "alice", Labels: []string{"Level 3"}, URL: "https://github.com/o/r/issues/7"},
	})

	report := BuildReport(contributors)
	row := report.Rows[0]

	assert.Equal(t, `=HYPERLINK("https://github.com/o/r/pull/12","#12") & " (level-2 - 7pts)"`, row[2])
	assert.Equal(t, `=HYPERLINK("https://github.com/o/r/issues/7","#7") & " (level-3 - 10pts)"`, row[3])
	assert.Equal(t, 7, row[4])
	assert.Equal(t, 10, row[5])
	assert.Equal(t, 17, row[6])
	assert.Equal(t, "level-2, level-3", row[7])
}

func TestBuildReportUnleveledItem(t *testing.T) {
	contributors := buildContributors(t, []Item{
		{Number: 30, Kind: KindPullRequest, Author: "bob", Labels: []string{"gssoc"}, URL: "https://github.com/o/r/pull/30"},
	})

	report := BuildReport(contributors)
	row := report.Rows[0]

	assert.Equal(t, `=HYPERLINK("https://github.com/o/r/pull/30","#30")`, row[2])
	assert.Equal(t, "", row[3])
	assert.Equal(t, 0, row[6])
	assert.Equal(t, "", row[7])
}

func TestBuildReportJoinsMultipleItems(t *testing.T) {
	contributors := buildContributors(t, []Item{
		{Number: 1, Kind: KindPullRequest, Author: "erin", Labels: []string{"level-1"}, URL: "https://github.com/o/r/pull/1"},
		{Number: 2, Kind: KindPullRequest, Author: "erin", Labels: []string{"level-1"}, URL: "https://github.com/o/r/pull/2"},
	})

	report := BuildReport(contributors)
	expected := `=HYPERLINK("https://github.com/o/r/pull/1","#1") & " (level-1 - 3pts)", =HYPERLINK("https://github.com/o/r/pull/2","#2") & " (level-1 - 3pts)"`
	assert.Equal(t, expected, report.Rows[0][2])
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil)
	assert.Equal(t, ReportHeaders, report.Headers)
	assert.Empty(t, report.Rows)
}
