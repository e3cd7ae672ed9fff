package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"github.com/parasnikum/DevSync/pkg/logger"
)

// ItemKind distinguishes pull requests from issues
type ItemKind string

const (
	KindPullRequest ItemKind = "pull_request"
	KindIssue       ItemKind = "issue"
)

// Item is one closed pull request or issue that carries the program label
type Item struct {
	Number int
	Kind   ItemKind
	Author string
	Labels []string
	URL    string
}

// Collector fetches the complete set of qualifying closed pull requests and
// issues for one repository. Pages are fetched sequentially; the resulting
// order is the discovery order used for report tie-breaks.
type Collector struct {
	client       *github.Client
	owner        string
	repo         string
	programLabel string

	// RequireMerged restricts pull requests to merged ones. The default
	// counts any closed PR.
	RequireMerged bool
}

// NewCollector creates a collector for owner/repo, keeping only items whose
// labels contain the programLabel marker
func NewCollector(client *github.Client, owner, repo, programLabel string) *Collector {
	return &Collector{
		client:       client,
		owner:        owner,
		repo:         repo,
		programLabel: programLabel,
	}
}

// Collect returns all qualifying pull requests followed by all qualifying
// issues. Any page failure aborts the whole run.
func (c *Collector) Collect(ctx context.Context) ([]Item, error) {
	prs, err := c.collectPullRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests for %s/%s: %w", c.owner, c.repo, err)
	}

	issues, err := c.collectIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issues for %s/%s: %w", c.owner, c.repo, err)
	}

	logger.Infof("Collected %d pull requests and %d issues for %s/%s", len(prs), len(issues), c.owner, c.repo)
	return append(prs, issues...), nil
}

func (c *Collector) collectPullRequests(ctx context.Context) ([]Item, error) {
	var items []Item
	opts := &github.PullRequestListOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	for {
		prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, err
		}

		for _, pr := range prs {
			if c.RequireMerged && pr.MergedAt == nil {
				continue
			}

			labels := labelNames(pr.Labels)
			if !HasProgramLabel(labels, c.programLabel) {
				continue
			}

			items = append(items, Item{
				Number: pr.GetNumber(),
				Kind:   KindPullRequest,
				Author: authorLogin(pr.User),
				Labels: labels,
				URL:    c.itemURL(KindPullRequest, pr.GetNumber(), pr.GetHTMLURL()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return items, nil
}

func (c *Collector) collectIssues(ctx context.Context) ([]Item, error) {
	var items []Item
	opts := &github.IssueListByRepoOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, err
		}

		for _, issue := range issues {
			// The issues listing also returns pull requests
			if issue.IsPullRequest() {
				continue
			}

			labels := labelNames(issue.Labels)
			if !HasProgramLabel(labels, c.programLabel) {
				continue
			}

			items = append(items, Item{
				Number: issue.GetNumber(),
				Kind:   KindIssue,
				Author: authorLogin(issue.User),
				Labels: labels,
				URL:    c.itemURL(KindIssue, issue.GetNumber(), issue.GetHTMLURL()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return items, nil
}

func (c *Collector) itemURL(kind ItemKind, number int, htmlURL string) string {
	if htmlURL != "" {
		return htmlURL
	}
	segment := "issues"
	if kind == KindPullRequest {
		segment = "pull"
	}
	return fmt.Sprintf("https://github.com/%s/%s/%s/%d", c.owner, c.repo, segment, number)
}

func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names
}

func authorLogin(user *github.User) string {
	if login := user.GetLogin(); login != "" {
		return login
	}
	return "unknown"
}
