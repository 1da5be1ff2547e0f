package domain

// ReviewCritic is a critic whose country reference has been resolved to a name.
type ReviewCritic struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Country string `json:"country"`
}

// Review pairs a critic with the score they gave.
type Review struct {
	Critic ReviewCritic `json:"critic"`
	Score  float64      `json:"score"`
}

// ExpandedMovie is a movie with every foreign key replaced by the referenced record.
type ExpandedMovie struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	ReleaseYear     int        `json:"releaseYear"`
	FilmingLocation Location   `json:"filmingLocation"`
	Directors       []Director `json:"directors"`
	Genres          []Genre    `json:"genres"`
	Reviews         []Review   `json:"reviews"`
}
