// Package repository reads the catalog collections from Postgres.
package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-queries/internal/aggregate"
	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/store"
)

// Repository aggregates the per-table readers and implements catalog.Source.
type Repository struct {
	Movies     *MoviesRepository
	Ratings    *RatingsRepository
	References *ReferencesRepository
}

var _ catalog.Source = (*Repository)(nil)

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Movies:     &MoviesRepository{pool: pool},
		Ratings:    &RatingsRepository{pool: pool},
		References: &ReferencesRepository{pool: pool},
	}
}

// Load reads every collection and assembles a dataset snapshot.
func (r *Repository) Load(ctx context.Context) (*catalog.Dataset, error) {
	var (
		ds  catalog.Dataset
		err error
	)
	if ds.Movies, err = r.Movies.List(ctx); err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	if ds.Directors, err = r.References.Directors(ctx); err != nil {
		return nil, fmt.Errorf("load directors: %w", err)
	}
	if ds.Genres, err = r.References.Genres(ctx); err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	if ds.Critics, err = r.References.Critics(ctx); err != nil {
		return nil, fmt.Errorf("load critics: %w", err)
	}
	if ds.Countries, err = r.References.Countries(ctx); err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	if ds.Ratings, err = r.Ratings.List(ctx); err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	return &ds, nil
}

// VerifyAggregates compares the in-memory rating aggregates of ds with the
// ones computed by the database and reports the first mismatch.
func (r *Repository) VerifyAggregates(ctx context.Context, ds *catalog.Dataset) error {
	for _, entry := range aggregate.MovieAverages(ds.Ratings, ds.Movies) {
		agg, err := r.Ratings.Aggregate(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("verify movie %d: %w", entry.ID, err)
		}
		if agg.Count != entry.Rating.Count || math.Abs(agg.Average-entry.Rating.Average) > 1e-9 {
			return fmt.Errorf("verify movie %d: database has %+v, dataset has %+v", entry.ID, agg, entry.Rating)
		}
	}
	return nil
}
