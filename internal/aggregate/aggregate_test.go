package aggregate

import (
	"math"
	"testing"

	"github.com/Clark-Hu/movie-queries/internal/domain"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"years", []float64{1985, 1999}, 1992},
		{"fractional", []float64{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMovieAverages(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Name: "Back to the Future", DirectorIDs: []int{1}},
		{ID: 2, Name: "Matrix", DirectorIDs: []int{2, 3}},
	}
	ratings := []domain.Rating{
		{CriticID: 1, MovieID: 2, Score: 8},
		{CriticID: 2, MovieID: 2, Score: 6},
	}

	got := MovieAverages(ratings, movies)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("movie order not preserved: %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Rating != (domain.RatingAggregate{}) {
		t.Fatalf("unrated movie aggregate = %+v, want zero", got[0].Rating)
	}
	if got[1].Rating.Average != 7 || got[1].Rating.Count != 2 {
		t.Fatalf("matrix aggregate = %+v, want {7 2}", got[1].Rating)
	}
}

func TestMovieAverages_DoesNotAliasInput(t *testing.T) {
	movies := []domain.Movie{{ID: 1, DirectorIDs: []int{1, 2}, GenreIDs: []int{3}}}

	got := MovieAverages(nil, movies)
	got[0].DirectorIDs[0] = 99
	got[0].GenreIDs[0] = 99

	if movies[0].DirectorIDs[0] != 1 || movies[0].GenreIDs[0] != 3 {
		t.Fatalf("input movie mutated through result: %+v", movies[0])
	}
}

func TestMovieAverages_IgnoresUnknownMovies(t *testing.T) {
	movies := []domain.Movie{{ID: 1}}
	ratings := []domain.Rating{{MovieID: 42, Score: 10}}

	got := MovieAverages(ratings, movies)
	if len(got) != 1 || got[0].Rating.Count != 0 {
		t.Fatalf("unexpected aggregates: %+v", got)
	}
}

func BenchmarkMovieAverages(b *testing.B) {
	movies := make([]domain.Movie, 500)
	ratings := make([]domain.Rating, 0, 5000)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, DirectorIDs: []int{1}, GenreIDs: []int{1, 2}}
		for j := 0; j < 10; j++ {
			ratings = append(ratings, domain.Rating{CriticID: j, MovieID: i + 1, Score: float64(j)})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MovieAverages(ratings, movies)
	}
}
