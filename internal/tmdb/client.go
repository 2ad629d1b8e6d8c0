// Package tmdb talks to The Movie Database REST API (v3).
//
// It provides the multi-entity suggestion lookup used by the search box and
// the detail and listing fetches used by the screens. Field names in the wire
// structs are TMDB's.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"cinegrip/internal/config"
	"cinegrip/internal/domain"
)

// Client is a TMDB API client
type Client struct {
	http           *http.Client
	baseURL        string
	imageBaseURL   string
	apiKey         string
	accessToken    string
	language       string
	includeAdult   bool
	maxRetries     int
	maxSuggestions int
	log            *logrus.Entry
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) { c.log = log }
}

// WithMaxSuggestions caps the number of results Lookup returns; 0 means no cap
func WithMaxSuggestions(n int) Option {
	return func(c *Client) { c.maxSuggestions = n }
}

// NewClient creates a client from the tmdb settings
func NewClient(cfg config.TMDBSettings, opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: cfg.RequestTimeout()},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		accessToken:  cfg.AccessToken,
		language:     cfg.Language,
		includeAdult: cfg.IncludeAdult,
		maxRetries:   cfg.MaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return c
}

// multiItem is one entry of search/multi, trending and similar lists
type multiItem struct {
	ID                 int     `json:"id"`
	MediaType          string  `json:"media_type"`
	Title              string  `json:"title"`
	Name               string  `json:"name"`
	ReleaseDate        string  `json:"release_date"`
	FirstAirDate       string  `json:"first_air_date"`
	PosterPath         string  `json:"poster_path"`
	ProfilePath        string  `json:"profile_path"`
	GenreIDs           []int   `json:"genre_ids"`
	KnownForDepartment string  `json:"known_for_department"`
	Character          string  `json:"character"`
	VoteAverage        float64 `json:"vote_average"`
	Popularity         float64 `json:"popularity"`
}

type pagedResults struct {
	Page         int         `json:"page"`
	Results      []multiItem `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// kind maps media_type; fallback is used for endpoints that omit it
func (it multiItem) kind(fallback domain.Kind) domain.Kind {
	if it.MediaType == "" {
		return fallback
	}
	return domain.Kind(it.MediaType)
}

func (it multiItem) title(kind domain.Kind) string {
	if kind == domain.KindMovie && it.Title != "" {
		return it.Title
	}
	if it.Name != "" {
		return it.Name
	}
	return it.Title
}

func (it multiItem) date(kind domain.Kind) string {
	if kind == domain.KindTV {
		return it.FirstAirDate
	}
	return it.ReleaseDate
}

func (it multiItem) suggestion() (domain.Suggestion, bool) {
	kind := it.kind("")
	if !kind.Valid() {
		return domain.Suggestion{}, false
	}

	s := domain.Suggestion{
		ID:          strconv.Itoa(it.ID),
		Kind:        kind,
		DisplayName: it.title(kind),
	}
	switch kind {
	case domain.KindPerson:
		s.ThumbnailRef = it.ProfilePath
		s.ClassificationLabel = it.KnownForDepartment
	default:
		s.ThumbnailRef = it.PosterPath
		s.PrimaryDate = it.date(kind)
		s.ClassificationLabel = GenreName(kind, it.GenreIDs)
	}
	return s, true
}

// Lookup runs a multi search and maps the first page to suggestions.
// People, movies and TV series are returned; other media types are skipped.
func (c *Client) Lookup(ctx context.Context, query string) ([]domain.Suggestion, error) {
	suggestions, err := c.SearchAll(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if c.maxSuggestions > 0 && len(suggestions) > c.maxSuggestions {
		suggestions = suggestions[:c.maxSuggestions]
	}
	return suggestions, nil
}

// SearchAll returns every suggestion of the given result page
func (c *Client) SearchAll(ctx context.Context, query string, page int) ([]domain.Suggestion, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", strconv.FormatBool(c.includeAdult))
	params.Set("page", strconv.Itoa(page))

	var result pagedResults
	if err := c.get(ctx, "search/multi", query, params, &result); err != nil {
		return nil, err
	}

	suggestions := make([]domain.Suggestion, 0, len(result.Results))
	for _, item := range result.Results {
		if s, ok := item.suggestion(); ok {
			suggestions = append(suggestions, s)
		}
	}
	c.log.WithField("query", query).Debugf("search/multi returned %d of %d results", len(suggestions), result.TotalResults)
	return suggestions, nil
}

// Trending returns the trending list for mediaType (all, movie, tv, person)
// over window (day, week)
func (c *Client) Trending(ctx context.Context, mediaType, window string) ([]domain.TrendingItem, error) {
	switch mediaType {
	case "all", "movie", "tv", "person":
	default:
		return nil, fmt.Errorf("unknown trending media type %q", mediaType)
	}
	switch window {
	case "day", "week":
	default:
		return nil, fmt.Errorf("unknown trending window %q", window)
	}
	return c.list(ctx, "trending/"+mediaType+"/"+window, domain.Kind(mediaType), url.Values{})
}

// Popular returns the popular movies or TV shows
func (c *Client) Popular(ctx context.Context, kind domain.Kind) ([]domain.TrendingItem, error) {
	return c.Category(ctx, kind, "popular")
}

// Category returns one of the curated movie or TV lists, e.g. top_rated
func (c *Client) Category(ctx context.Context, kind domain.Kind, category string) ([]domain.TrendingItem, error) {
	if !domain.HasOption(domain.Categories(kind), category) {
		return nil, fmt.Errorf("unknown %s category %q", kind, category)
	}
	return c.list(ctx, string(kind)+"/"+category, kind, url.Values{})
}

// Discover returns the most popular movies or TV shows of a genre
func (c *Client) Discover(ctx context.Context, kind domain.Kind, genreID int) ([]domain.TrendingItem, error) {
	if kind != domain.KindMovie && kind != domain.KindTV {
		return nil, fmt.Errorf("cannot discover %q", kind)
	}
	if genreID <= 0 {
		return nil, fmt.Errorf("invalid genre id %d", genreID)
	}
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")
	if kind == domain.KindMovie {
		params.Set("include_adult", strconv.FormatBool(c.includeAdult))
	}
	return c.list(ctx, "discover/"+string(kind), kind, params)
}

// PopularPeople returns the currently popular people
func (c *Client) PopularPeople(ctx context.Context) ([]domain.TrendingItem, error) {
	return c.list(ctx, "person/popular", domain.KindPerson, url.Values{})
}

// Genres returns the genres of a work kind sorted by name
func (c *Client) Genres(kind domain.Kind) []domain.Genre {
	return Genres(kind)
}

// list fetches the first page of a listing endpoint. kind is used for
// entries that carry no media_type.
func (c *Client) list(ctx context.Context, op string, kind domain.Kind, params url.Values) ([]domain.TrendingItem, error) {
	var result pagedResults
	if err := c.get(ctx, op, "", params, &result); err != nil {
		return nil, err
	}

	items := make([]domain.TrendingItem, 0, len(result.Results))
	for _, it := range result.Results {
		k := it.kind(kind)
		if !k.Valid() {
			continue
		}
		items = append(items, domain.TrendingItem{
			ID:         strconv.Itoa(it.ID),
			Kind:       k,
			Title:      it.title(k),
			Date:       it.date(k),
			Rating:     it.VoteAverage,
			Popularity: it.Popularity,
		})
	}
	c.log.WithFields(logrus.Fields{"op": op, "count": len(items)}).Debug("listing fetched")
	return items, nil
}

type workResponse struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	Runtime          int     `json:"runtime"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	PosterPath       string  `json:"poster_path"`
	Genres           []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			ID        int    `json:"id"`
			Name      string `json:"name"`
			Character string `json:"character"`
		} `json:"cast"`
	} `json:"credits"`
	Videos struct {
		Results []struct {
			Key  string `json:"key"`
			Site string `json:"site"`
			Type string `json:"type"`
		} `json:"results"`
	} `json:"videos"`
	Similar pagedResults `json:"similar"`
}

// MovieDetails fetches a movie with credits, videos and similar titles
func (c *Client) MovieDetails(ctx context.Context, id string) (*domain.WorkDetails, error) {
	return c.workDetails(ctx, domain.KindMovie, id)
}

// TVDetails fetches a series with credits, videos and similar titles
func (c *Client) TVDetails(ctx context.Context, id string) (*domain.WorkDetails, error) {
	return c.workDetails(ctx, domain.KindTV, id)
}

func (c *Client) workDetails(ctx context.Context, kind domain.Kind, id string) (*domain.WorkDetails, error) {
	if _, err := strconv.Atoi(id); err != nil {
		return nil, fmt.Errorf("invalid %s id %q", kind, id)
	}
	params := url.Values{}
	params.Set("append_to_response", "credits,videos,similar")

	var resp workResponse
	if err := c.get(ctx, string(kind)+"/"+id, "", params, &resp); err != nil {
		return nil, err
	}

	d := &domain.WorkDetails{
		ID:        strconv.Itoa(resp.ID),
		Kind:      kind,
		Tagline:   resp.Tagline,
		Overview:  resp.Overview,
		Runtime:   resp.Runtime,
		Seasons:   resp.NumberOfSeasons,
		Episodes:  resp.NumberOfEpisodes,
		Rating:    resp.VoteAverage,
		VoteCount: resp.VoteCount,
		PosterRef: resp.PosterPath,
	}
	if kind == domain.KindTV {
		d.Title, d.Date = resp.Name, resp.FirstAirDate
	} else {
		d.Title, d.Date = resp.Title, resp.ReleaseDate
	}
	for _, g := range resp.Genres {
		d.Genres = append(d.Genres, g.Name)
	}
	for _, m := range resp.Credits.Cast {
		d.Cast = append(d.Cast, domain.CastMember{
			ID:        strconv.Itoa(m.ID),
			Name:      m.Name,
			Character: m.Character,
		})
	}
	for _, v := range resp.Videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			d.TrailerKey = v.Key
			break
		}
	}
	for _, it := range resp.Similar.Results {
		d.Similar = append(d.Similar, domain.WorkRef{
			ID:    strconv.Itoa(it.ID),
			Kind:  kind,
			Title: it.title(kind),
			Date:  it.date(kind),
		})
	}
	return d, nil
}

type personResponse struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Biography          string `json:"biography"`
	Birthday           string `json:"birthday"`
	Deathday           string `json:"deathday"`
	PlaceOfBirth       string `json:"place_of_birth"`
	KnownForDepartment string `json:"known_for_department"`
	ProfilePath        string `json:"profile_path"`
	CombinedCredits    struct {
		Cast []multiItem `json:"cast"`
	} `json:"combined_credits"`
}

// PersonDetails fetches a person with combined movie and TV credits
func (c *Client) PersonDetails(ctx context.Context, id string) (*domain.PersonDetails, error) {
	if _, err := strconv.Atoi(id); err != nil {
		return nil, fmt.Errorf("invalid person id %q", id)
	}
	params := url.Values{}
	params.Set("append_to_response", "combined_credits")

	var resp personResponse
	if err := c.get(ctx, "person/"+id, "", params, &resp); err != nil {
		return nil, err
	}

	p := &domain.PersonDetails{
		ID:           strconv.Itoa(resp.ID),
		Name:         resp.Name,
		Biography:    resp.Biography,
		Birthday:     resp.Birthday,
		Deathday:     resp.Deathday,
		PlaceOfBirth: resp.PlaceOfBirth,
		KnownFor:     resp.KnownForDepartment,
		ProfileRef:   resp.ProfilePath,
	}
	for _, it := range resp.CombinedCredits.Cast {
		kind := it.kind(domain.KindMovie)
		if kind != domain.KindMovie && kind != domain.KindTV {
			continue
		}
		p.Credits = append(p.Credits, domain.WorkRef{
			ID:    strconv.Itoa(it.ID),
			Kind:  kind,
			Title: it.title(kind),
			Date:  it.date(kind),
			Role:  it.Character,
		})
	}
	return p, nil
}

// ImageURL builds the full image URL for a TMDB image path
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "w500"
	}
	return c.imageBaseURL + "/" + size + path
}

// get performs a GET against op and decodes the JSON body into out.
// Every failure is returned as a *LookupError.
func (c *Client) get(ctx context.Context, op, query string, params url.Values, out any) error {
	if c.apiKey == "" && c.accessToken == "" {
		return &LookupError{Op: op, Query: query, Err: ErrMissingCredentials}
	}

	if c.language != "" {
		params.Set("language", c.language)
	}
	if c.accessToken == "" {
		params.Set("api_key", c.apiKey)
	}
	endpoint := c.baseURL + "/" + op + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &LookupError{Op: op, Query: query, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return &LookupError{Op: op, Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			StatusMessage string `json:"status_message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		var cause error
		if apiErr.StatusMessage != "" {
			cause = errors.New(apiErr.StatusMessage)
		}
		return &LookupError{Op: op, Query: query, Status: resp.StatusCode, Err: cause}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &LookupError{Op: op, Query: query, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
