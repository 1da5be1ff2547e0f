// Package query exposes the read-only movie queries over a catalog dataset.
//
// Every result is freshly built; nothing returned shares memory with the
// dataset, so a Service may be used from many goroutines at once.
package query

import (
	"fmt"

	"github.com/Clark-Hu/movie-queries/internal/aggregate"
	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/domain"
	"github.com/Clark-Hu/movie-queries/internal/textfilter"
)

// DefaultExcellentThreshold is the average rating at or above which a movie is excellent.
const DefaultExcellentThreshold = 9.0

// Options tunes query behaviour.
type Options struct {
	// ExcellentThreshold is the minimum average for ExcellentMovies. Zero means
	// DefaultExcellentThreshold; use MoviesRatedAtLeast(0) for a literal zero.
	ExcellentThreshold float64
}

// Service runs queries against a single dataset.
type Service struct {
	data *catalog.Dataset
	opts Options
}

// New constructs a Service. A nil dataset behaves as an empty one.
func New(data *catalog.Dataset, opts Options) *Service {
	if data == nil {
		data = &catalog.Dataset{}
	}
	if opts.ExcellentThreshold == 0 {
		opts.ExcellentThreshold = DefaultExcellentThreshold
	}
	return &Service{data: data, opts: opts}
}

// ExcellentThreshold returns the threshold used by ExcellentMovies.
func (s *Service) ExcellentThreshold() float64 {
	return s.opts.ExcellentThreshold
}

// AverageReleaseYear returns the mean release year of all movies, 0 when there are none.
func (s *Service) AverageReleaseYear() float64 {
	years := make([]float64, 0, len(s.data.Movies))
	for _, m := range s.data.Movies {
		years = append(years, float64(m.ReleaseYear))
	}
	return aggregate.Mean(years)
}

// MoviesRatedAbove returns the movies whose average rating is strictly greater than threshold.
func (s *Service) MoviesRatedAbove(threshold float64) []domain.MovieWithAverage {
	return s.filterAverages(func(avg float64) bool { return avg > threshold })
}

// MoviesRatedAtLeast returns the movies whose average rating is at least threshold.
func (s *Service) MoviesRatedAtLeast(threshold float64) []domain.MovieWithAverage {
	return s.filterAverages(func(avg float64) bool { return avg >= threshold })
}

// ExcellentMovies returns the movies rated at or above the configured excellent threshold.
func (s *Service) ExcellentMovies() []domain.MovieWithAverage {
	return s.MoviesRatedAtLeast(s.opts.ExcellentThreshold)
}

func (s *Service) filterAverages(keep func(float64) bool) []domain.MovieWithAverage {
	out := make([]domain.MovieWithAverage, 0)
	for _, entry := range aggregate.MovieAverages(s.data.Ratings, s.data.Movies) {
		if keep(entry.Rating.Average) {
			out = append(out, entry)
		}
	}
	return out
}

// RatingByMovieID returns the rating aggregate of a movie and whether the movie exists.
func (s *Service) RatingByMovieID(id int) (domain.RatingAggregate, bool) {
	for _, entry := range aggregate.MovieAverages(s.data.Ratings, s.data.Movies) {
		if entry.ID == id {
			return entry.Rating, true
		}
	}
	return domain.RatingAggregate{}, false
}

// AverageRatingByMovieID returns the average rating of a movie, 0 for unknown ids.
func (s *Service) AverageRatingByMovieID(id int) float64 {
	agg, _ := s.RatingByMovieID(id)
	return agg.Average
}

// MoviesByDirector returns the movies directed by the first director whose
// name matches the query. No match yields an empty slice.
func (s *Service) MoviesByDirector(name string) []domain.Movie {
	out := make([]domain.Movie, 0)
	director, ok := textfilter.First(s.data.Directors, func(d domain.Director) string { return d.Name }, name)
	if !ok {
		return out
	}
	for _, m := range s.data.Movies {
		if m.HasDirector(director.ID) {
			out = append(out, m.Clone())
		}
	}
	return out
}

// ExpandMovie finds the first movie whose name matches the query and joins
// its directors, genres and reviews. The bool is false when no movie matches.
// A reference that does not resolve aborts the call with an error wrapping
// catalog.ErrDataIntegrity.
func (s *Service) ExpandMovie(name string) (domain.ExpandedMovie, bool, error) {
	movie, ok := textfilter.First(s.data.Movies, func(m domain.Movie) string { return m.Name }, name)
	if !ok {
		return domain.ExpandedMovie{}, false, nil
	}

	out := domain.ExpandedMovie{
		ID:              movie.ID,
		Name:            movie.Name,
		ReleaseYear:     movie.ReleaseYear,
		FilmingLocation: movie.FilmingLocation,
		Directors:       make([]domain.Director, 0, len(movie.DirectorIDs)),
		Genres:          make([]domain.Genre, 0, len(movie.GenreIDs)),
		Reviews:         make([]domain.Review, 0),
	}

	for _, id := range movie.DirectorIDs {
		d, err := s.data.Director(id)
		if err != nil {
			return domain.ExpandedMovie{}, false, fmt.Errorf("expand movie %d: %w", movie.ID, err)
		}
		out.Directors = append(out.Directors, d)
	}
	for _, id := range movie.GenreIDs {
		g, err := s.data.Genre(id)
		if err != nil {
			return domain.ExpandedMovie{}, false, fmt.Errorf("expand movie %d: %w", movie.ID, err)
		}
		out.Genres = append(out.Genres, g)
	}
	for _, r := range s.data.RatingsFor(movie.ID) {
		review, err := s.review(r)
		if err != nil {
			return domain.ExpandedMovie{}, false, fmt.Errorf("expand movie %d: %w", movie.ID, err)
		}
		out.Reviews = append(out.Reviews, review)
	}
	return out, true, nil
}

func (s *Service) review(r domain.Rating) (domain.Review, error) {
	critic, err := s.data.Critic(r.CriticID)
	if err != nil {
		return domain.Review{}, err
	}
	country, err := s.data.Country(critic.CountryID)
	if err != nil {
		return domain.Review{}, err
	}
	return domain.Review{
		Critic: domain.ReviewCritic{
			ID:      critic.ID,
			Name:    critic.Name,
			Age:     critic.Age,
			Country: country.Name,
		},
		Score: r.Score,
	}, nil
}
