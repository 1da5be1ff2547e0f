package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
)

func main() {
	var (
		port   = flag.String("port", "9099", "port to listen on")
		data   = flag.String("data", "", "path to a dataset JSON file (built-in sample when empty)")
		apiKey = flag.String("api-key", "", "require this X-API-Key when set")
		logReq = flag.Bool("log", false, "enable request logging")
	)
	flag.Parse()

	ds := catalog.Sample()
	if *data != "" {
		file, err := os.ReadFile(*data)
		if err != nil {
			log.Fatalf("read mock data: %v", err)
		}
		if ds, err = catalog.Decode(file); err != nil {
			log.Fatalf("parse mock data: %v", err)
		}
	}

	r := chi.NewRouter()
	if *logReq {
		r.Use(middleware.Logger)
	}
	r.Get("/catalog", func(w http.ResponseWriter, req *http.Request) {
		if *apiKey != "" && req.Header.Get("X-API-Key") != *apiKey {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ds); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := ":" + *port
	log.Printf("mock catalog listening on %s (%d movies)", addr, len(ds.Movies))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
