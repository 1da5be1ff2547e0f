package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Data sources understood by DATA_SOURCE.
const (
	SourceSample   = "sample"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRemote   = "remote"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port               string
	DataSource         string
	DataFile           string
	DBURL              string
	CatalogURL         string
	CatalogAPIKey      string
	CatalogTimeoutSecs int
	LoadTimeoutSecs    int
	ExcellentThreshold float64
	ReadTimeoutSecs    int
	WriteTimeoutSecs   int
	IdleTimeoutSecs    int
	DBMaxConns         int
	DBMinConns         int
	DBMaxIdleSecs      int
	DBMaxLifeSecs      int
	DBConnTimeoutSecs  int
	DBStatementCache   int
}

// Load reads an optional .env file, then configuration from environment
// variables, applying defaults and validation.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DataSource:         strings.ToLower(getEnv("DATA_SOURCE", SourceSample)),
		DataFile:           os.Getenv("DATA_FILE"),
		DBURL:              os.Getenv("DB_URL"),
		CatalogURL:         os.Getenv("CATALOG_URL"),
		CatalogAPIKey:      os.Getenv("CATALOG_API_KEY"),
		CatalogTimeoutSecs: getEnvInt("CATALOG_TIMEOUT_SECS", 5),
		LoadTimeoutSecs:    getEnvInt("LOAD_TIMEOUT_SECS", 10),
		ExcellentThreshold: getEnvFloat("EXCELLENT_THRESHOLD", 9),
		ReadTimeoutSecs:    getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs:   getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:    getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DBMaxConns:         getEnvInt("DB_MAX_CONNS", 4),
		DBMinConns:         getEnvInt("DB_MIN_CONNS", 0),
		DBMaxIdleSecs:      getEnvInt("DB_MAX_CONN_IDLE_SECS", 300),
		DBMaxLifeSecs:      getEnvInt("DB_MAX_CONN_LIFETIME_SECS", 3600),
		DBConnTimeoutSecs:  getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache:   getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 256),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.DataSource {
	case SourceSample:
	case SourceFile:
		if cfg.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if cfg.DBURL == "" {
			return fmt.Errorf("DB_URL is required when DATA_SOURCE=postgres")
		}
		if cfg.DBMaxConns <= 0 {
			return fmt.Errorf("DB_MAX_CONNS must be positive")
		}
		if cfg.DBMinConns < 0 {
			return fmt.Errorf("DB_MIN_CONNS must be non-negative")
		}
		if cfg.DBMinConns > cfg.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
		}
		if cfg.DBStatementCache < 0 {
			return fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
		}
	case SourceRemote:
		if cfg.CatalogURL == "" {
			return fmt.Errorf("CATALOG_URL is required when DATA_SOURCE=remote")
		}
		if cfg.CatalogTimeoutSecs <= 0 {
			return fmt.Errorf("CATALOG_TIMEOUT_SECS must be positive")
		}
	default:
		return fmt.Errorf("DATA_SOURCE %q is not one of sample, file, postgres, remote", cfg.DataSource)
	}

	if cfg.LoadTimeoutSecs <= 0 {
		return fmt.Errorf("LOAD_TIMEOUT_SECS must be positive")
	}
	if cfg.ExcellentThreshold <= 0 {
		return fmt.Errorf("EXCELLENT_THRESHOLD must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
