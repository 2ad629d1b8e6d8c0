//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// fakeTMDB serves canned TMDB responses and records the search queries
type fakeTMDB struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

var multiResults = map[string]string{
	"bat": `[
		{"id": 272, "media_type": "movie", "title": "Batman Begins", "release_date": "2005-06-10", "genre_ids": [28]}
	]`,
	"batm": `[
		{"id": 272, "media_type": "movie", "title": "Batman Begins", "release_date": "2005-06-10", "genre_ids": [28]},
		{"id": 2661, "media_type": "tv", "name": "Batman", "first_air_date": "1966-01-12", "genre_ids": [10759]}
	]`,
}

const trendingBody = `{"page": 1, "results": [
	{"id": 693134, "media_type": "movie", "title": "Dune: Part Two", "release_date": "2024-02-27", "vote_average": 8.2},
	{"id": 1396, "media_type": "tv", "name": "Breaking Bad", "first_air_date": "2008-01-20", "vote_average": 8.9}
]}`

const movieBody = `{
	"id": 272, "title": "Batman Begins", "release_date": "2005-06-10",
	"tagline": "Evil fears the knight.",
	"overview": "Driven by tragedy, billionaire Bruce Wayne dedicates his life to uncovering and defeating the corruption that plagues his home, Gotham City.",
	"runtime": 140, "vote_average": 7.7, "vote_count": 20000,
	"genres": [{"id": 28, "name": "Action"}],
	"credits": {"cast": [{"id": 3894, "name": "Christian Bale", "character": "Bruce Wayne"}]},
	"similar": {"results": [{"id": 155, "title": "The Dark Knight", "release_date": "2008-07-16"}]}
}`

func newFakeTMDB(t *testing.T) *fakeTMDB {
	t.Helper()
	f := &fakeTMDB{}
	mux := http.NewServeMux()
	mux.HandleFunc("/trending/all/week", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(trendingBody))
	})
	mux.HandleFunc("/search/multi", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		f.mu.Lock()
		f.queries = append(f.queries, q)
		f.mu.Unlock()

		results, ok := multiResults[strings.ToLower(q)]
		if !ok {
			results = "[]"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"page": 1, "total_results": 1, "results": %s}`, results)
	})
	mux.HandleFunc("/movie/272", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(movieBody))
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

// Queries returns the search queries received so far
func (f *fakeTMDB) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// WriteConfig writes a config file pointing cinegrip at the fake server
func (tf *TUITestFramework) WriteConfig(baseURL string) (string, error) {
	path := filepath.Join(tf.workspace, "config.toml")
	body := fmt.Sprintf(`version = 1

[tmdb]
api_key = 'e2e-key'
base_url = '%s'
max_retries = 0

[search]
debounce = '150ms'
max_suggestions = 8
cache_size = 0

[ui]
mouse = true
alt_screen = true

[log]
level = 'debug'
file = '%s'
`, baseURL, filepath.Join(tf.workspace, "cinegrip.log"))
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		return "", err
	}
	return path, nil
}
