package analysis

import (
	"log/slog"

	"github.com/ja7ad/dcmodel/pkg/cache"
)

// Config wires the Analyzer's collaborators.
type Config struct {
	// Cache stores finished reports. Nil disables caching.
	Cache cache.Cache
	// Logger receives cache diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

func _defaultConfig() *Config {
	return &Config{Logger: slog.Default()}
}

// Stats counts cache outcomes since the Analyzer was created.
type Stats struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	CacheErrors uint64 `json:"cacheErrors"`
}
