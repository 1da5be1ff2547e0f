package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-queries/internal/domain"
)

// RatingsRepository reads critic ratings.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

// List returns every rating in insertion order.
func (r *RatingsRepository) List(ctx context.Context) ([]domain.Rating, error) {
	const query = `SELECT critic_id, movie_id, score FROM ratings ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rating, error) {
		var rating domain.Rating
		err := row.Scan(&rating.CriticID, &rating.MovieID, &rating.Score)
		return rating, err
	})
}

// Aggregate returns the rating average and count for a movie computed by the database.
func (r *RatingsRepository) Aggregate(ctx context.Context, movieID int) (domain.RatingAggregate, error) {
	const query = `
        SELECT COALESCE(AVG(score), 0)::float8 AS average,
               COUNT(*)::int8 AS count
        FROM ratings
        WHERE movie_id = $1
    `

	var (
		agg   domain.RatingAggregate
		count int64
	)
	if err := r.pool.QueryRow(ctx, query, movieID).Scan(&agg.Average, &count); err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	agg.Count = int(count)
	return agg, nil
}
