package domain

// Location is the address of a movie's filming set.
type Location struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Country string `json:"country"`
}

// Movie represents the canonical movie entity of the catalog.
type Movie struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	ReleaseYear     int      `json:"releaseYear"`
	FilmingLocation Location `json:"filmingLocation"`
	DirectorIDs     []int    `json:"directorIds"`
	GenreIDs        []int    `json:"genreIds"`
}

// Clone returns a copy of the movie that shares no slices with the receiver.
func (m Movie) Clone() Movie {
	out := m
	out.DirectorIDs = cloneIDs(m.DirectorIDs)
	out.GenreIDs = cloneIDs(m.GenreIDs)
	return out
}

// HasDirector reports whether the director id is listed on the movie.
func (m Movie) HasDirector(id int) bool {
	for _, d := range m.DirectorIDs {
		if d == id {
			return true
		}
	}
	return false
}

// Director is a person credited as director of one or more movies.
type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Genre classifies movies.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Country is referenced by critics.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Critic reviews movies.
type Critic struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	CountryID int    `json:"countryId"`
}

func cloneIDs(ids []int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
