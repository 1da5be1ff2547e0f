package domain

// Rating represents a single critic's score for a movie.
type Rating struct {
	CriticID int     `json:"criticId"`
	MovieID  int     `json:"movieId"`
	Score    float64 `json:"score"`
}

// RatingAggregate provides average and count for a movie's ratings.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// MovieWithAverage is a movie augmented with its rating aggregate.
type MovieWithAverage struct {
	Movie
	Rating RatingAggregate `json:"rating"`
}
