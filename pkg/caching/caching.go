// Package caching stores fetched page bodies on disk for the revalidation
// window, so repeated pipeline runs inside the window reuse the upstream
// response instead of re-fetching. The districts update at most daily, so an
// hourly window is plenty.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-based body cache keyed by URL with a freshness window.
type Cache struct {
	path   string
	window time.Duration
}

// New creates a Cache rooted at path. The directory is created if missing.
// A non-positive window disables reuse entirely (every Get misses).
func New(path string, window time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{path: path, window: window}, nil
}

// key hashes the URL into a filesystem-safe filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash)
}

// Get returns the cached body for url and true when it is younger than the
// revalidation window, otherwise nil and false.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.window <= 0 {
		return nil, false
	}

	filePath := filepath.Join(c.path, c.key(url))
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.window {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a fetched body for url.
func (c *Cache) Set(url string, data []byte) error {
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0640); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
