package dataset

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"job-dash/internal/domain"
)

// CachingSource memoizes tables loaded from local files. An entry is reused
// only while the file's size and modification time are unchanged, so edits
// on disk are picked up on the next load. Remote locations pass straight
// through.
type CachingSource struct {
	next domain.TableSource

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	size    int64
	modTime time.Time
	table   *domain.Table
}

// NewCachingSource wraps next with a file-stamp cache.
func NewCachingSource(next domain.TableSource) *CachingSource {
	return &CachingSource{next: next, entries: make(map[string]cacheEntry)}
}

// Load returns the cached table for location or loads it from next.
func (c *CachingSource) Load(ctx context.Context, location string) (*domain.Table, error) {
	if strings.Contains(location, "://") {
		return c.next.Load(ctx, location)
	}

	info, err := os.Stat(location)
	if err != nil {
		c.forget(location)
		return c.next.Load(ctx, location)
	}

	c.mu.Lock()
	entry, ok := c.entries[location]
	c.mu.Unlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.table, nil
	}

	tbl, err := c.next.Load(ctx, location)
	if err != nil {
		c.forget(location)
		return nil, err
	}

	c.mu.Lock()
	c.entries[location] = cacheEntry{size: info.Size(), modTime: info.ModTime(), table: tbl}
	c.mu.Unlock()
	return tbl, nil
}

// Len reports the number of cached tables.
func (c *CachingSource) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CachingSource) forget(location string) {
	c.mu.Lock()
	delete(c.entries, location)
	c.mu.Unlock()
}
