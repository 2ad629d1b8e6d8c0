package domain

// Kind identifies which family of entity a suggestion points at
type Kind string

const (
	KindMovie  Kind = "movie"  // primary work
	KindTV     Kind = "tv"     // secondary work
	KindPerson Kind = "person" // cast or crew member
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindTV, KindPerson:
		return true
	default:
		return false
	}
}

// Label returns a short human readable label for the kind
func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindTV:
		return "TV"
	case KindPerson:
		return "Person"
	default:
		return string(k)
	}
}

// Suggestion is one candidate returned by a multi-entity lookup.
// Values are treated as immutable once returned.
type Suggestion struct {
	ID                  string
	Kind                Kind
	DisplayName         string
	ThumbnailRef        string // image path, "" when absent
	PrimaryDate         string // release or first air date, "" when absent
	ClassificationLabel string // genre or known-for department, "" when absent
}

// Year returns the four digit year of PrimaryDate, or "" if it is unknown
func (s Suggestion) Year() string {
	if len(s.PrimaryDate) < 4 {
		return ""
	}
	return s.PrimaryDate[:4]
}

// NavigationIntent is a request to move to another route
type NavigationIntent struct {
	Route  string            // concrete path, e.g. /movies/details/42
	Params map[string]string // route parameters, URL-safe encoded
}

// CastMember is a credited person on a work
type CastMember struct {
	ID        string
	Name      string
	Character string
}

// WorkRef is a lightweight pointer at another work (similar titles, credits)
type WorkRef struct {
	ID    string
	Kind  Kind
	Title string
	Date  string
	Role  string // character or job, only set for person credits
}

// WorkDetails describes a movie or a TV series
type WorkDetails struct {
	ID          string
	Kind        Kind
	Title       string
	Tagline     string
	Overview    string
	Date        string
	Genres      []string
	Runtime     int // minutes, movies only
	Seasons     int // tv only
	Episodes    int // tv only
	Rating      float64
	VoteCount   int
	PosterRef   string
	TrailerKey  string // YouTube key of the first trailer, "" when none
	Cast        []CastMember
	Similar     []WorkRef
}

// PersonDetails describes a person
type PersonDetails struct {
	ID           string
	Name         string
	Biography    string
	Birthday     string
	Deathday     string
	PlaceOfBirth string
	KnownFor     string
	ProfileRef   string
	Credits      []WorkRef
}

// TrendingItem is one entry of a trending list
type TrendingItem struct {
	ID         string
	Kind       Kind
	Title      string
	Date       string
	Rating     float64
	Popularity float64
}
