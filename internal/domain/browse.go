package domain

// Option is one choice of a listing filter
type Option struct {
	Value string
	Label string
}

// Genre is a TMDB genre
type Genre struct {
	ID   int
	Name string
}

// Listing filters offered by the browse screens
var (
	TrendingTypes = []Option{
		{"all", "All"},
		{"movie", "Movies"},
		{"tv", "TV Shows"},
	}
	TrendingWindows = []Option{
		{"day", "Today"},
		{"week", "This Week"},
	}
	PopularTypes = []Option{
		{"movie", "Movies"},
		{"tv", "TV Shows"},
	}
	MovieCategories = []Option{
		{"popular", "Popular"},
		{"top_rated", "Top Rated"},
		{"upcoming", "Upcoming"},
		{"now_playing", "Now Playing"},
	}
	TVCategories = []Option{
		{"popular", "Popular"},
		{"top_rated", "Top Rated"},
		{"on_the_air", "On The Air"},
		{"airing_today", "Airing Today"},
	}
)

// Categories returns the category list of a work kind, nil for people
func Categories(kind Kind) []Option {
	switch kind {
	case KindMovie:
		return MovieCategories
	case KindTV:
		return TVCategories
	default:
		return nil
	}
}

// HasOption reports whether value is one of opts
func HasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label of value, or value itself when unknown
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// NextOption returns the option after value, wrapping around. An unknown
// value starts over at the first option.
func NextOption(opts []Option, value string) Option {
	for i, o := range opts {
		if o.Value == value {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}
