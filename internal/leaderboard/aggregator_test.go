package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatorScoring(t *testing.T) {
	agg := NewAggregator(DefaultPointTable())
	agg.AddAll([]Item{
		{Number: 12, Kind: KindPullRequest, Author: "alice", Labels: []string{"gssoc", "level-2"}, URL: "https://github.com/o/r/pull/12"},
		{Number: 7, Kind: KindIssue, Author: "alice", Labels: []string{"gssoc", "Level 3"}, URL: "https://github.com/o/r/issues/7"},
		{Number: 30, Kind: KindPullRequest, Author: "bob", Labels: []string{"gssoc"}, URL: "https://github.com/o/r/pull/30"},
	})

	contributors := agg.Contributors()
	assert.Len(t, contributors, 2)

	alice := contributors[0]
	assert.Equal(t, "alice", alice.Username)
	assert.Len(t, alice.PullRequests, 1)
	assert.Len(t, alice.Issues, 1)
	assert.Equal(t, 7, alice.PRPoints)
	assert.Equal(t, 10, alice.IssuePoints)
	assert.Equal(t, 17, alice.TotalPoints())
	assert.Equal(t, []string{"level-2", "level-3"}, alice.LevelsSeen)

	bob := contributors[1]
	assert.Equal(t, "bob", bob.Username)
	assert.Len(t, bob.PullRequests, 1)
	assert.Equal(t, 0, bob.TotalPoints())
	assert.Empty(t, bob.LevelsSeen)
}

func TestAggregatorHighestLabelWins(t *testing.T) {
	agg := NewAggregator(DefaultPointTable())
	agg.Add(Item{
		Number: 1,
		Kind:   KindPullRequest,
		Author: "carol",
		Labels: []string{"level-1", "level-3"},
	})

	carol := agg.Contributors()[0]
	assert.Equal(t, 10, carol.PRPoints)
	assert.Equal(t, []string{"level-3"}, carol.LevelsSeen)
}

func TestAggregatorUnknownLevel(t *testing.T) {
	agg := NewAggregator(DefaultPointTable())
	agg.Add(Item{
		Number: 2,
		Kind:   KindIssue,
		Author: "dave",
		Labels: []string{"level-10"},
	})

	dave := agg.Contributors()[0]
	assert.Equal(t, 0, dave.TotalPoints())
	assert.Equal(t, "level-10", dave.Issues[0].Level)
	assert.Equal(t, 0, dave.Issues[0].Points)
	assert.Empty(t, dave.LevelsSeen, "unscored levels stay out of the levels column")
}

func TestAggregatorDeduplicatesLevels(t *testing.T) {
	agg := NewAggregator(DefaultPointTable())
	agg.AddAll([]Item{
		{Number: 3, Kind: KindPullRequest, Author: "erin", Labels: []string{"level-1"}},
		{Number: 4, Kind: KindPullRequest, Author: "erin", Labels: []string{"Level-1"}},
	})

	erin := agg.Contributors()[0]
	assert.Equal(t, 6, erin.PRPoints)
	assert.Equal(t, []string{"level-1"}, erin.LevelsSeen)
}

func TestAggregatorDiscoveryOrder(t *testing.T) {
	agg := NewAggregator(DefaultPointTable())
	agg.AddAll([]Item{
		{Number: 1, Kind: KindPullRequest, Author: "zoe"},
		{Number: 2, Kind: KindIssue, Author: "adam"},
		{Number: 3, Kind: KindPullRequest, Author: "zoe"},
	})

	contributors := agg.Contributors()
	assert.Equal(t, "zoe", contributors[0].Username)
	assert.Equal(t, "adam", contributors[1].Username)
}
