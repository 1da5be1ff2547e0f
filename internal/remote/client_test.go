package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(srv.URL+"/", "apikey", 2*time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("create http client: %v", err)
	}
	return client
}

func TestHTTPClientLoad(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-API-Key") != "apikey" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(catalog.Sample())
	})

	ds, err := client.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Movies) != 4 || len(ds.Ratings) != 6 {
		t.Fatalf("unexpected dataset sizes: %d movies, %d ratings", len(ds.Movies), len(ds.Ratings))
	}
	if ds.Movies[1].Name != "Matrix" || len(ds.Movies[1].DirectorIDs) != 2 {
		t.Fatalf("unexpected movie: %+v", ds.Movies[1])
	}
}

func TestHTTPClientLoad_Statuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.Load(context.Background())
			if err == nil {
				t.Fatalf("expected error for status %d", tt.status)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Fatalf("err = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestHTTPClientLoad_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"movies": [`))
	})
	if _, err := client.Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewHTTPClient_RejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("catalog.local", "", time.Second, nil); err == nil {
		t.Fatalf("expected error for relative url")
	}
}
