// Package config loads the environment-variable configuration for the
// fedikit-demo command: a flat Config struct with documented defaults,
// exiting on a missing required variable.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration for the demo host application
// built on top of the fedikit toolkit.
type Config struct {
	// Domain is the external hostname the demo is served under (no
	// scheme, no trailing slash), used to build the absolute ids of the
	// demo's actors and notes. The WebFinger host match compares against
	// the request's Host header, not this value.
	Domain string
	// Port is the local TCP port the HTTP server listens on.
	Port string
	// DatabaseURL selects the demo store's backing SQL driver: a bare
	// path or "sqlite://..." for SQLite, "postgres://..." for Postgres.
	DatabaseURL string
	// ScriptRoot is an optional path prefix the demo is mounted under
	// (e.g. "/fedikit"), honored by the route map's URL builder.
	ScriptRoot string

	// LoaderTimeout bounds the default HTTP document loader's requests.
	LoaderTimeout time.Duration
	// LoaderCacheTTL bounds how long a fetched remote document is
	// reused before the loader re-fetches it.
	LoaderCacheTTL time.Duration
	// OutboxPageSize is the number of activities the demo store returns
	// per outbox page.
	OutboxPageSize int
}

// Load reads configuration from environment variables. It exits
// (slog.Error + os.Exit(1)) if FEDIKIT_DOMAIN is not set: every
// WebFinger and actor/outbox URL this toolkit builds is only correct
// once the serving domain is known.
func Load() *Config {
	domain := os.Getenv("FEDIKIT_DOMAIN")
	if domain == "" {
		slog.Error("FEDIKIT_DOMAIN is not set; set it to the hostname this demo is served under, e.g. fedikit.example")
		os.Exit(1)
	}

	return &Config{
		Domain:         domain,
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "fedikit-demo.db"),
		ScriptRoot:     strings.TrimSuffix(os.Getenv("SCRIPT_ROOT"), "/"),
		LoaderTimeout:  parseDuration(os.Getenv("LOADER_TIMEOUT"), 10*time.Second),
		LoaderCacheTTL: parseDuration(os.Getenv("LOADER_CACHE_TTL"), time.Hour),
		OutboxPageSize: parseInt(os.Getenv("OUTBOX_PAGE_SIZE"), 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1"
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return i
}
