// Package aggregate joins ratings to movies and computes per-movie averages.
package aggregate

import "github.com/Clark-Hu/movie-queries/internal/domain"

// Mean returns the arithmetic mean of values; an empty slice yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MovieAverages returns one entry per movie, in input order, carrying the
// mean score and number of ratings that reference it. Movies without ratings
// get a zero aggregate. Neither input is modified.
func MovieAverages(ratings []domain.Rating, movies []domain.Movie) []domain.MovieWithAverage {
	sums := make(map[int]float64, len(movies))
	counts := make(map[int]int, len(movies))
	for _, r := range ratings {
		sums[r.MovieID] += r.Score
		counts[r.MovieID]++
	}

	out := make([]domain.MovieWithAverage, 0, len(movies))
	for _, m := range movies {
		entry := domain.MovieWithAverage{Movie: m.Clone()}
		if n := counts[m.ID]; n > 0 {
			entry.Rating = domain.RatingAggregate{
				Average: sums[m.ID] / float64(n),
				Count:   n,
			}
		}
		out = append(out, entry)
	}
	return out
}
