// Package cache stores serialized model results keyed by the full parameter
// set. The engine is pure, so a hit is always equivalent to recomputing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ja7ad/dcmodel/pkg/params"
)

// Cache is a byte-value store. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key; ok is false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// keyVersion changes whenever the cached payload shape changes.
const keyVersion = "v1"

// Key derives a stable cache key from every field of p and the horizon.
func Key(p params.ParameterSet, years int) (string, error) {
	b, err := json.Marshal(struct {
		P     params.ParameterSet `json:"p"`
		Years int                 `json:"years"`
	}{p, years})
	if err != nil {
		return "", fmt.Errorf("cache: key: %w", err)
	}
	return fmt.Sprintf("dcmodel:%s:%016x", keyVersion, xxhash.Sum64(b)), nil
}
