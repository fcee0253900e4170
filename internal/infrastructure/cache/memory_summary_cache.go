package cache

import (
	"context"
	"sync"
	"time"

	"github.com/comex/backend/internal/application/report"
)

// InMemorySummaryCache implements the report SummaryCache in process
// memory. Suitable for single-instance deployments and testing.
type InMemorySummaryCache struct {
	mu        sync.RWMutex
	summary   *report.Summary
	expiresAt time.Time
}

// NewInMemorySummaryCache creates an empty in-memory summary cache
func NewInMemorySummaryCache() *InMemorySummaryCache {
	return &InMemorySummaryCache{}
}

// Get returns the cached summary if it has not expired
func (c *InMemorySummaryCache) Get(_ context.Context) (*report.Summary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.summary == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	copied := *c.summary
	return &copied, true
}

// Set stores the summary with the given TTL
func (c *InMemorySummaryCache) Set(_ context.Context, summary *report.Summary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *summary
	c.summary = &copied
	c.expiresAt = time.Now().Add(ttl)
}

// Invalidate drops the cached summary
func (c *InMemorySummaryCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = nil
}

// Ensure InMemorySummaryCache implements SummaryCache
var _ report.SummaryCache = (*InMemorySummaryCache)(nil)
