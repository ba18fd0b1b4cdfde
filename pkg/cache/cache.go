// Package cache stores computed layouts and rendered artifacts.
//
// A day file is hashed, the layout computed from it is cached under a key
// derived from that hash and the layout options, and every rendered artifact
// is cached under a key derived from the layout hash and render options.
// Three backends implement [Cache]:
//
//   - [FileCache] for the CLI, under the user's cache directory
//   - [RedisCache] for the API server, shared across replicas
//   - [NullCache] when caching is disabled (--no-cache)
//
// Keys are produced by a [Keyer] so callers never assemble them by hand.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
	TTLFeed     = 15 * time.Minute
)

// Cache is a byte-oriented key/value store with optional expiry.
// A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache never stores anything; every Get is a miss.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
