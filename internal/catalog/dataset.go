package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Clark-Hu/movie-queries/internal/domain"
)

// ErrDataIntegrity indicates a foreign key that does not resolve in the dataset.
var ErrDataIntegrity = errors.New("catalog: data integrity")

// Dataset holds the six flat collections the queries run over. It is never
// mutated once loaded.
type Dataset struct {
	Movies    []domain.Movie    `json:"movies"`
	Directors []domain.Director `json:"directors"`
	Genres    []domain.Genre    `json:"genres"`
	Critics   []domain.Critic   `json:"critics"`
	Countries []domain.Country  `json:"countries"`
	Ratings   []domain.Rating   `json:"ratings"`
}

// Source supplies a dataset at process start.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Static serves an in-memory dataset.
type Static struct {
	Data *Dataset
}

// Load returns the wrapped dataset, or the built-in sample when none is set.
func (s Static) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Data == nil {
		return Sample(), nil
	}
	return s.Data, nil
}

// Director resolves a director id.
func (d *Dataset) Director(id int) (domain.Director, error) {
	for _, dir := range d.Directors {
		if dir.ID == id {
			return dir, nil
		}
	}
	return domain.Director{}, fmt.Errorf("%w: director %d", ErrDataIntegrity, id)
}

// Genre resolves a genre id.
func (d *Dataset) Genre(id int) (domain.Genre, error) {
	for _, g := range d.Genres {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Genre{}, fmt.Errorf("%w: genre %d", ErrDataIntegrity, id)
}

// Critic resolves a critic id.
func (d *Dataset) Critic(id int) (domain.Critic, error) {
	for _, c := range d.Critics {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Critic{}, fmt.Errorf("%w: critic %d", ErrDataIntegrity, id)
}

// Country resolves a country id.
func (d *Dataset) Country(id int) (domain.Country, error) {
	for _, c := range d.Countries {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Country{}, fmt.Errorf("%w: country %d", ErrDataIntegrity, id)
}

// RatingsFor returns the ratings of a movie in dataset order.
func (d *Dataset) RatingsFor(movieID int) []domain.Rating {
	out := make([]domain.Rating, 0)
	for _, r := range d.Ratings {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out
}
