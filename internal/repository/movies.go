package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-queries/internal/domain"
)

// MoviesRepository reads movie rows, in insertion order, together with their ordered director and genre ids.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const listMoviesQuery = `
    SELECT
        m.id,
        m.name,
        m.release_year,
        m.location_street,
        m.location_number,
        m.location_country,
        COALESCE((SELECT array_agg(md.director_id ORDER BY md.position)
                  FROM movie_directors md WHERE md.movie_id = m.id), '{}'::int[]),
        COALESCE((SELECT array_agg(mg.genre_id ORDER BY mg.position)
                  FROM movie_genres mg WHERE mg.movie_id = m.id), '{}'::int[])
    FROM movies m
    ORDER BY m.seq
`

// List returns every movie in insertion order.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.pool.Query(ctx, listMoviesQuery)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMovie)
}

func scanMovie(row pgx.CollectableRow) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.ReleaseYear,
		&movie.FilmingLocation.Street,
		&movie.FilmingLocation.Number,
		&movie.FilmingLocation.Country,
		&movie.DirectorIDs,
		&movie.GenreIDs,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
