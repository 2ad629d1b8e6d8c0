package tmdb

import (
	"sort"

	"cinegrip/internal/domain"
)

// TMDB's genre ids are stable, so search results can be labelled without
// an extra /genre/*/list call per session.
var movieGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

var tvGenres = map[int]string{
	10759: "Action & Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	10762: "Kids",
	9648:  "Mystery",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
	37:    "Western",
}

func genreTable(kind domain.Kind) map[int]string {
	if kind == domain.KindTV {
		return tvGenres
	}
	return movieGenres
}

// Genres returns the genres of a work kind sorted by name, nil for people
func Genres(kind domain.Kind) []domain.Genre {
	if kind != domain.KindMovie && kind != domain.KindTV {
		return nil
	}
	table := genreTable(kind)
	out := make([]domain.Genre, 0, len(table))
	for id, name := range table {
		out = append(out, domain.Genre{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GenreName returns the name of the first known genre id, or ""
func GenreName(kind domain.Kind, ids []int) string {
	table := genreTable(kind)
	for _, id := range ids {
		if name, ok := table[id]; ok {
			return name
		}
	}
	return ""
}
