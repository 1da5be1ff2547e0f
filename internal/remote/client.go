// Package remote fetches a catalog snapshot from an HTTP endpoint.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/domain"
)

// ErrNotFound is returned when the upstream has no catalog to serve.
var ErrNotFound = errors.New("remote: not found")

// HTTPClient implements catalog.Source over HTTP.
type HTTPClient struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

var _ catalog.Source = (*HTTPClient)(nil)

// NewHTTPClient constructs a catalog client rooted at baseURL.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("parse catalog url: %q is not absolute", baseURL)
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
			},
		},
		logger: logger,
	}, nil
}

// Load retrieves the full dataset from {baseURL}/catalog.
func (c *HTTPClient) Load(ctx context.Context) (*catalog.Dataset, error) {
	endpoint := c.baseURL.JoinPath("catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payload snapshot
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode catalog response: %w", err)
		}
		ds := payload.toDataset()
		c.logger.Printf("remote: loaded %d movies and %d ratings", len(ds.Movies), len(ds.Ratings))
		return ds, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		c.logger.Printf("remote: unexpected status %d from %s", resp.StatusCode, endpoint.Redacted())
		return nil, fmt.Errorf("remote: upstream returned %d", resp.StatusCode)
	}
}

// snapshot is the wire payload. Collections may be omitted by the upstream.
type snapshot struct {
	Movies    []moviePayload    `json:"movies"`
	Directors []domain.Director `json:"directors"`
	Genres    []domain.Genre    `json:"genres"`
	Critics   []domain.Critic   `json:"critics"`
	Countries []domain.Country  `json:"countries"`
	Ratings   []domain.Rating   `json:"ratings"`
}

type moviePayload struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	ReleaseYear     int              `json:"releaseYear"`
	FilmingLocation *domain.Location `json:"filmingLocation"`
	DirectorIDs     []int            `json:"directorIds"`
	GenreIDs        []int            `json:"genreIds"`
}

func (s snapshot) toDataset() *catalog.Dataset {
	movies := make([]domain.Movie, 0, len(s.Movies))
	for _, m := range s.Movies {
		movie := domain.Movie{
			ID:          m.ID,
			Name:        m.Name,
			ReleaseYear: m.ReleaseYear,
			DirectorIDs: orEmpty(m.DirectorIDs),
			GenreIDs:    orEmpty(m.GenreIDs),
		}
		if m.FilmingLocation != nil {
			movie.FilmingLocation = *m.FilmingLocation
		}
		movies = append(movies, movie)
	}
	return &catalog.Dataset{
		Movies:    movies,
		Directors: orEmpty(s.Directors),
		Genres:    orEmpty(s.Genres),
		Critics:   orEmpty(s.Critics),
		Countries: orEmpty(s.Countries),
		Ratings:   orEmpty(s.Ratings),
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
