// Package source builds the catalog.Source selected by configuration.
package source

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Clark-Hu/movie-queries/internal/catalog"
	"github.com/Clark-Hu/movie-queries/internal/config"
	"github.com/Clark-Hu/movie-queries/internal/remote"
	"github.com/Clark-Hu/movie-queries/internal/repository"
	"github.com/Clark-Hu/movie-queries/internal/store"
)

// Opened is a ready-to-load source plus whatever it holds open.
type Opened struct {
	Source catalog.Source
	// Store is set only for the postgres source.
	Store *store.Store
}

// Close releases resources held by the source.
func (o *Opened) Close() {
	if o != nil && o.Store != nil {
		o.Store.Close()
	}
}

// Open constructs the source named by cfg.DataSource.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (*Opened, error) {
	switch cfg.DataSource {
	case config.SourceSample, "":
		return &Opened{Source: catalog.Static{}}, nil
	case config.SourceFile:
		return &Opened{Source: catalog.FileSource{Path: cfg.DataFile}}, nil
	case config.SourceRemote:
		client, err := remote.NewHTTPClient(cfg.CatalogURL, cfg.CatalogAPIKey, time.Duration(cfg.CatalogTimeoutSecs)*time.Second, logger)
		if err != nil {
			return nil, fmt.Errorf("init catalog client: %w", err)
		}
		return &Opened{Source: client}, nil
	case config.SourcePostgres:
		st, err := store.Open(ctx, cfg.DBURL, store.OptionsFromConfig(cfg, logger))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		return &Opened{Source: repository.New(st), Store: st}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

// Load opens the configured source and reads the dataset within LOAD_TIMEOUT_SECS.
// The returned Opened must be closed by the caller.
func Load(ctx context.Context, cfg config.Config, logger *log.Logger) (*catalog.Dataset, *Opened, error) {
	opened, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LoadTimeoutSecs)*time.Second)
	defer cancel()

	ds, err := opened.Source.Load(loadCtx)
	if err != nil {
		opened.Close()
		return nil, nil, fmt.Errorf("load %s dataset: %w", cfg.DataSource, err)
	}
	if logger != nil {
		logger.Printf("source: loaded %s dataset (%d movies, %d ratings)", cfg.DataSource, len(ds.Movies), len(ds.Ratings))
	}
	return ds, opened, nil
}
