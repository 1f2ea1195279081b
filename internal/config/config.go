package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// PathVariant selects which of the two observed backend path conventions the
// client talks to. Deployments differ in whether the parking endpoints are
// mounted under a /parking prefix.
type PathVariant string

const (
	PathFlat   PathVariant = "flat"   // /parkingsTypes/, /parkings/...
	PathNested PathVariant = "nested" // /parking/parkingsTypes/, /parking/parkings/...
)

type Config struct {
	BaseURL         string
	PathVariant     PathVariant
	RequestTimeout  time.Duration
	CredentialsFile string
	// Some deployments require bearer auth on search/removal, some accept
	// anonymous calls. Both observed; configured per deployment.
	AuthOnSearch bool
	AuthOnRemove bool
	LogLevel     string
	LogFormat    string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BaseURL:         getenv("PARKINGSPOT_API_URL", "http://localhost:8000"),
		PathVariant:     PathVariant(getenv("PARKINGSPOT_PATH_VARIANT", string(PathNested))),
		CredentialsFile: getenv("PARKINGSPOT_CREDENTIALS_FILE", defaultCredentialsFile()),
		AuthOnSearch:    getenv("PARKINGSPOT_AUTH_ON_SEARCH", "false") == "true",
		AuthOnRemove:    getenv("PARKINGSPOT_AUTH_ON_REMOVE", "false") == "true",
		LogLevel:        getenv("PARKINGSPOT_LOG_LEVEL", "info"),
		LogFormat:       getenv("PARKINGSPOT_LOG_FORMAT", "text"),
	}

	switch cfg.PathVariant {
	case PathFlat, PathNested:
	default:
		return nil, fmt.Errorf("invalid PARKINGSPOT_PATH_VARIANT %q", cfg.PathVariant)
	}

	timeout := getenv("PARKINGSPOT_TIMEOUT", "10s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid PARKINGSPOT_TIMEOUT %q: %w", timeout, err)
	}
	cfg.RequestTimeout = d

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parkingspot-credentials.json"
	}
	return filepath.Join(home, ".parkingspot", "credentials.json")
}
