// Command queries runs every catalog query once and logs the results.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/Clark-Hu/movie-queries/internal/config"
	"github.com/Clark-Hu/movie-queries/internal/query"
	"github.com/Clark-Hu/movie-queries/internal/repository"
	"github.com/Clark-Hu/movie-queries/internal/source"
)

func main() {
	verify := flag.Bool("verify", false, "cross-check rating aggregates against the database (postgres source only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "", 0)

	ds, opened, err := source.Load(context.Background(), cfg, log.New(os.Stderr, "[queries] ", log.LstdFlags))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	defer opened.Close()

	if *verify {
		repo, ok := opened.Source.(*repository.Repository)
		if !ok {
			log.Fatalf("-verify requires DATA_SOURCE=postgres, got %s", cfg.DataSource)
		}
		if err := repo.VerifyAggregates(context.Background(), ds); err != nil {
			log.Fatalf("verify aggregates: %v", err)
		}
		logger.Println("Rating aggregates match the database.")
	}

	q := query.New(ds, query.Options{ExcellentThreshold: cfg.ExcellentThreshold})

	logger.Println("------------------------------------------------------")
	logger.Println("Running movie queries.")

	show(logger, "Average release year:", q.AverageReleaseYear())
	show(logger, "Movies rated above 5:", q.MoviesRatedAbove(5))
	show(logger, "Average rating of Matrix (id 2):", q.AverageRatingByMovieID(2))
	show(logger, "Movies directed by Spielberg:", q.MoviesByDirector("Steven Spielberg"))
	show(logger, "Movies with excellent rating:", q.ExcellentMovies())

	logger.Println("------------------------------------------------------")
	logger.Println("Expanding movie information.")

	for _, name := range []string{"Back to the Future", "Matrix"} {
		movie, ok, err := q.ExpandMovie(name)
		if err != nil {
			log.Fatalf("expand %q: %v", name, err)
		}
		if !ok {
			logger.Printf("%s: not found", name)
			continue
		}
		show(logger, name+":", movie)
	}
}

func show(logger *log.Logger, label string, data interface{}) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Printf("%s <unencodable: %v>", label, err)
		return
	}
	logger.Printf("%s %s", label, payload)
}
