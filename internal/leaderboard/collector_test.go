package leaderboard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL
	return client
}

func TestCollectFiltersAndClassifies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "closed", r.URL.Query().Get("state"))
		fmt.Fprint(w, `[
			{"number": 12, "user": {"login": "alice"}, "merged_at": "2025-07-01T10:00:00Z",
			 "labels": [{"name": "gssoc"}, {"name": "level-2"}],
			 "html_url": "https://github.com/o/r/pull/12"},
			{"number": 13, "user": {"login": "mallory"},
			 "labels": [{"name": "bug"}],
			 "html_url": "https://github.com/o/r/pull/13"}
		]`)
	})
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "closed", r.URL.Query().Get("state"))
		fmt.Fprint(w, `[
			{"number": 7, "user": {"login": "alice"},
			 "labels": [{"name": "GSSoC'25"}, {"name": "Level 3"}],
			 "html_url": "https://github.com/o/r/issues/7"},
			{"number": 12, "user": {"login": "alice"},
			 "labels": [{"name": "gssoc"}, {"name": "level-2"}],
			 "pull_request": {"url": "https://api.github.com/repos/o/r/pulls/12"},
			 "html_url": "https://github.com/o/r/pull/12"}
		]`)
	})

	collector := NewCollector(newTestClient(t, mux), "o", "r", "gssoc")
	items, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, KindPullRequest, items[0].Kind)
	assert.Equal(t, 12, items[0].Number)
	assert.Equal(t, "alice", items[0].Author)
	assert.Equal(t, []string{"gssoc", "level-2"}, items[0].Labels)
	assert.Equal(t, "https://github.com/o/r/pull/12", items[0].URL)

	assert.Equal(t, KindIssue, items[1].Kind)
	assert.Equal(t, 7, items[1].Number)
}

func TestCollectPaginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/pulls", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"number": 2, "user": {"login": "bob"}, "labels": [{"name": "gssoc"}]}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s?page=2>; rel="next"`, "http://"+r.Host+r.URL.Path))
		fmt.Fprint(w, `[{"number": 1, "user": {"login": "alice"}, "labels": [{"name": "gssoc"}]}]`)
	})
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	collector := NewCollector(newTestClient(t, mux), "o", "r", "gssoc")
	items, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Number)
	assert.Equal(t, 2, items[1].Number)
}

func TestCollectRequireMerged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/pulls", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"number": 1, "user": {"login": "alice"}, "merged_at": "2025-07-01T10:00:00Z",
			 "labels": [{"name": "gssoc"}]},
			{"number": 2, "user": {"login": "bob"},
			 "labels": [{"name": "gssoc"}]}
		]`)
	})
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	collector := NewCollector(newTestClient(t, mux), "o", "r", "gssoc")
	collector.RequireMerged = true
	items, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Number)
}

func TestCollectMissingAuthorAndURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/pulls", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"number": 9, "labels": [{"name": "gssoc"}]}]`)
	})
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"number": 4, "labels": [{"name": "gssoc"}]}]`)
	})

	collector := NewCollector(newTestClient(t, mux), "o", "r", "gssoc")
	items, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "unknown", items[0].Author)
	assert.Equal(t, "https://github.com/o/r/pull/9", items[0].URL)
	assert.Equal(t, "https://github.com/o/r/issues/4", items[1].URL)
}

func TestCollectAPIFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/pulls", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "rate limited"}`, http.StatusForbidden)
	})

	collector := NewCollector(newTestClient(t, mux), "o", "r", "gssoc")
	_, err := collector.Collect(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch pull requests")
}
