package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-queries/internal/domain"
)

// ReferencesRepository reads the lookup tables referenced by movies and ratings.
// Every table keeps a seq column so rows come back in the order they were loaded.
type ReferencesRepository struct {
	pool *pgxpool.Pool
}

// Directors returns every director in insertion order.
func (r *ReferencesRepository) Directors(ctx context.Context) ([]domain.Director, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM directors ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Director, error) {
		var d domain.Director
		err := row.Scan(&d.ID, &d.Name)
		return d, err
	})
}

// Genres returns every genre in insertion order.
func (r *ReferencesRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Genre, error) {
		var g domain.Genre
		err := row.Scan(&g.ID, &g.Name)
		return g, err
	})
}

// Critics returns every critic in insertion order.
func (r *ReferencesRepository) Critics(ctx context.Context) ([]domain.Critic, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, age, country_id FROM critics ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Critic, error) {
		var c domain.Critic
		err := row.Scan(&c.ID, &c.Name, &c.Age, &c.CountryID)
		return c, err
	})
}

// Countries returns every country in insertion order.
func (r *ReferencesRepository) Countries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM countries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Country, error) {
		var c domain.Country
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}
