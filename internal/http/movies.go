package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type averageResponse struct {
	Average float64 `json:"average"`
}

type movieRatingResponse struct {
	MovieID int     `json:"movieId"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type movieListResponse struct {
	Items []domain.Movie `json:"items"`
}

type ratedMovieListResponse struct {
	Threshold float64                   `json:"threshold"`
	Items     []domain.MovieWithAverage `json:"items"`
}

func (s *Server) handleAverageReleaseYear(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, averageResponse{Average: s.queries.AverageReleaseYear()})
}

func (s *Server) handleMoviesRatedAbove(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("threshold"))
	if raw == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "threshold is required")
		return
	}
	threshold, err := parseThreshold(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, ratedMovieListResponse{
		Threshold: threshold,
		Items:     s.queries.MoviesRatedAbove(threshold),
	})
}

func (s *Server) handleExcellentMovies(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("threshold"))
	if raw == "" {
		s.respondJSON(w, http.StatusOK, ratedMovieListResponse{
			Threshold: s.queries.ExcellentThreshold(),
			Items:     s.queries.ExcellentMovies(),
		})
		return
	}
	threshold, err := parseThreshold(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, ratedMovieListResponse{
		Threshold: threshold,
		Items:     s.queries.MoviesRatedAtLeast(threshold),
	})
}

func (s *Server) handleMovieRating(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid movie id")
		return
	}
	agg, _ := s.queries.RatingByMovieID(id)
	s.respondJSON(w, http.StatusOK, movieRatingResponse{
		MovieID: id,
		Average: agg.Average,
		Count:   agg.Count,
	})
}

func (s *Server) handleMoviesByDirector(w http.ResponseWriter, r *http.Request) {
	name, err := decodePathParam(r, "name")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, movieListResponse{Items: s.queries.MoviesByDirector(name)})
}

func (s *Server) handleExpandMovie(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "name is required")
		return
	}

	movie, ok, err := s.queries.ExpandMovie(name)
	if err != nil {
		if errors.Is(err, catalog.ErrDataIntegrity) {
			s.logger.Printf("expand movie %q: %v", name, err)
			s.respondError(w, http.StatusInternalServerError, "DATA_INTEGRITY", "Catalog references could not be resolved")
			return
		}
		s.logger.Printf("expand movie %q failed: %v", name, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to expand movie")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		return
	}
	s.respondJSON(w, http.StatusOK, movie)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func parseThreshold(raw string) (float64, error) {
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return 0, fmt.Errorf("invalid threshold value")
	}
	return threshold, nil
}

// decodePathParam returns a route parameter decoded exactly once. chi reads
// from r.URL.RawPath only when it is set; otherwise the value is already decoded.
func decodePathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return "", fmt.Errorf("missing %s parameter", key)
	}
	if r.URL.RawPath == "" {
		return raw, nil
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter", key)
	}
	return value, nil
}
