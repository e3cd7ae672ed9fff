package leaderboard

// ScoredItem is one contribution with its resolved level and points. Level
// may name a token absent from the point table; Points is 0 in that case
// and the item still shows up in the report for transparency.
type ScoredItem struct {
	Item   Item
	Level  string
	Points int
}

// Contributor accumulates one author's qualifying contributions for a single
// run. Records live only for the duration of the run; every invocation
// recomputes from scratch.
type Contributor struct {
	Username     string
	PullRequests []ScoredItem
	Issues       []ScoredItem
	PRPoints     int
	IssuePoints  int
	LevelsSeen   []string
}

// TotalPoints is the contributor's combined PR and issue score
func (c *Contributor) TotalPoints() int {
	return c.PRPoints + c.IssuePoints
}

func (c *Contributor) addLevel(level string) {
	for _, seen := range c.LevelsSeen {
		if seen == level {
			return
		}
	}
	c.LevelsSeen = append(c.LevelsSeen, level)
}

// Aggregator folds collected items into per-author contributor records.
// Contributors are kept in discovery order so repeated runs over the same
// input produce identical output.
type Aggregator struct {
	points PointTable
	byUser map[string]*Contributor
	order  []string
}

// NewAggregator creates an aggregator scoring with the given point table
func NewAggregator(points PointTable) *Aggregator {
	return &Aggregator{
		points: points,
		byUser: make(map[string]*Contributor),
	}
}

// Add scores one item and accumulates it under the item's author
func (a *Aggregator) Add(item Item) {
	contributor, ok := a.byUser[item.Author]
	if !ok {
		contributor = &Contributor{Username: item.Author}
		a.byUser[item.Author] = contributor
		a.order = append(a.order, item.Author)
	}

	level, points := a.points.Best(item.Labels)
	scored := ScoredItem{
		Item:   item,
		Level:  level,
		Points: points,
	}

	if item.Kind == KindPullRequest {
		contributor.PullRequests = append(contributor.PullRequests, scored)
		contributor.PRPoints += points
	} else {
		contributor.Issues = append(contributor.Issues, scored)
		contributor.IssuePoints += points
	}

	if points > 0 {
		contributor.addLevel(level)
	}
}

// AddAll scores a batch of items in order
func (a *Aggregator) AddAll(items []Item) {
	for _, item := range items {
		a.Add(item)
	}
}

// Contributors returns the accumulated records in discovery order
func (a *Aggregator) Contributors() []*Contributor {
	contributors := make([]*Contributor, 0, len(a.order))
	for _, username := range a.order {
		contributors = append(contributors, a.byUser[username])
	}
	return contributors
}
