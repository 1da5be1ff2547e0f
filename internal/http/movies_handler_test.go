package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/config"
	"github.com/Clark-Hu/movie-queries/internal/domain"
	"github.com/Clark-Hu/movie-queries/internal/query"
)

type fakeHealth struct{ err error }

func (f fakeHealth) HealthCheck(ctx context.Context) error { return f.err }

func buildTestServer(tb testing.TB, ds *catalog.Dataset, health HealthChecker) *Server {
	tb.Helper()
	cfg := config.Config{
		Port:             "0",
		ReadTimeoutSecs:  15,
		WriteTimeoutSecs: 15,
		IdleTimeoutSecs:  60,
	}
	logger := log.New(io.Discard, "", 0)
	srv := New(cfg, query.New(ds, query.Options{}), health, logger)
	// Replace chi router to avoid default middleware noise.
	srv.router = chi.NewRouter()
	srv.registerRoutes()
	return srv
}

func serve(tb testing.TB, srv *Server, target string) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func withRouteContext(req *http.Request, rctx *chi.Context) context.Context {
	return context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
}

func decodeBody(tb testing.TB, rec *httptest.ResponseRecorder, dst interface{}) {
	tb.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		tb.Fatalf("decode body: %v", err)
	}
}

func TestHandleHealthz(t *testing.T) {
	if rec := serve(t, buildTestServer(t, catalog.Sample(), nil), "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec := serve(t, buildTestServer(t, catalog.Sample(), fakeHealth{}), "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	down := buildTestServer(t, catalog.Sample(), fakeHealth{err: errors.New("down")})
	if rec := serve(t, down, "/healthz"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandleAverageReleaseYear(t *testing.T) {
	ds := &catalog.Dataset{Movies: []domain.Movie{
		{ID: 1, Name: "Back to the Future", ReleaseYear: 1985},
		{ID: 2, Name: "Matrix", ReleaseYear: 1999},
	}}
	rec := serve(t, buildTestServer(t, ds, nil), "/movies/release-year/average")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body averageResponse
	decodeBody(t, rec, &body)
	if body.Average != 1992 {
		t.Fatalf("average = %v, want 1992", body.Average)
	}
}

func TestHandleMoviesRatedAbove(t *testing.T) {
	srv := buildTestServer(t, catalog.Sample(), nil)

	rec := serve(t, srv, "/movies/rated-above?threshold=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body ratedMovieListResponse
	decodeBody(t, rec, &body)
	if len(body.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(body.Items))
	}
	for _, m := range body.Items {
		if m.Rating.Average <= 5 {
			t.Fatalf("movie %d average %v not above 5", m.ID, m.Rating.Average)
		}
	}

	for _, target := range []string{"/movies/rated-above", "/movies/rated-above?threshold=abc", "/movies/rated-above?threshold=NaN"} {
		if rec := serve(t, srv, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", target, rec.Code)
		}
	}
}

func TestHandleExcellentMovies(t *testing.T) {
	srv := buildTestServer(t, catalog.Sample(), nil)

	rec := serve(t, srv, "/movies/excellent")
	var body ratedMovieListResponse
	decodeBody(t, rec, &body)
	if body.Threshold != query.DefaultExcellentThreshold {
		t.Fatalf("threshold = %v, want default", body.Threshold)
	}
	if len(body.Items) != 1 || body.Items[0].Name != "Back to the Future" {
		t.Fatalf("unexpected excellent movies: %+v", body.Items)
	}

	rec = serve(t, srv, "/movies/excellent?threshold=10")
	body = ratedMovieListResponse{}
	decodeBody(t, rec, &body)
	if body.Items == nil || len(body.Items) != 0 {
		t.Fatalf("items = %#v, want empty list", body.Items)
	}
}

func TestHandleMovieRating(t *testing.T) {
	srv := buildTestServer(t, catalog.Sample(), nil)

	rec := serve(t, srv, "/movies/2/rating")
	var body movieRatingResponse
	decodeBody(t, rec, &body)
	if body.MovieID != 2 || body.Average != 7 || body.Count != 2 {
		t.Fatalf("unexpected rating: %+v", body)
	}

	rec = serve(t, srv, "/movies/404/rating")
	body = movieRatingResponse{}
	decodeBody(t, rec, &body)
	if body.Average != 0 || body.Count != 0 {
		t.Fatalf("unknown movie rating = %+v, want zero", body)
	}

	if rec := serve(t, srv, "/movies/abc/rating"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleMoviesByDirector(t *testing.T) {
	srv := buildTestServer(t, catalog.Sample(), nil)

	rec := serve(t, srv, "/directors/Steven%20Spielberg/movies")
	var body movieListResponse
	decodeBody(t, rec, &body)
	if len(body.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(body.Items))
	}

	rec = serve(t, srv, "/directors/Spielberg%25/movies")
	if rec.Code != http.StatusOK {
		t.Fatalf("percent in name: status = %d, want 200", rec.Code)
	}
	body = movieListResponse{}
	decodeBody(t, rec, &body)
	if len(body.Items) != 2 {
		t.Fatalf("percent in name: items = %d, want 2", len(body.Items))
	}

	rec = serve(t, srv, "/directors/Nobody/movies")
	body = movieListResponse{}
	decodeBody(t, rec, &body)
	if body.Items == nil || len(body.Items) != 0 {
		t.Fatalf("items = %#v, want empty list", body.Items)
	}
}

func TestHandleExpandMovie(t *testing.T) {
	srv := buildTestServer(t, catalog.Sample(), nil)

	rec := serve(t, srv, "/movies/info?name=future+back")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var movie domain.ExpandedMovie
	decodeBody(t, rec, &movie)
	if movie.Name != "Back to the Future" || len(movie.Directors) != 1 || movie.Directors[0].Name != "Robert Zemeckis" {
		t.Fatalf("unexpected expanded movie: %+v", movie)
	}
	if len(movie.Reviews) != 2 || movie.Reviews[1].Critic.Country != "Argentina" {
		t.Fatalf("unexpected reviews: %+v", movie.Reviews)
	}

	if rec := serve(t, srv, "/movies/info?name=Casablanca"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec := serve(t, srv, "/movies/info"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleExpandMovie_DataIntegrity(t *testing.T) {
	ds := catalog.Sample()
	ds.Movies[1].GenreIDs = []int{99}
	srv := buildTestServer(t, ds, nil)

	rec := serve(t, srv, "/movies/info?name=Matrix")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body errorResponse
	decodeBody(t, rec, &body)
	if body.Code != "DATA_INTEGRITY" {
		t.Fatalf("code = %s, want DATA_INTEGRITY", body.Code)
	}
}
