// Package cache holds the read cache for the latest draft of each owner.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// DraftCache caches the latest draft per owner. A miss is (nil, false, nil).
type DraftCache interface {
	Get(ctx context.Context, ownerID string) (*model.Draft, bool, error)
	Set(ctx context.Context, draft *model.Draft) error
	Invalidate(ctx context.Context, ownerID string) error
}

type memoryEntry struct {
	draft   model.Draft
	expires time.Time
}

// MemoryDraftCache is a process-local DraftCache with a fixed TTL.
type MemoryDraftCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryDraftCache(ttl time.Duration) *MemoryDraftCache {
	return &MemoryDraftCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryDraftCache) Get(_ context.Context, ownerID string) (*model.Draft, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ownerID]
	if !ok {
		return nil, false, nil
	}
	if c.ttl > 0 && c.now().After(e.expires) {
		delete(c.entries, ownerID)
		return nil, false, nil
	}
	d := e.draft
	d.Payload.Form = e.draft.Payload.Form.Clone()
	return &d, true, nil
}

func (c *MemoryDraftCache) Set(_ context.Context, draft *model.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := *draft
	d.Payload.Form = draft.Payload.Form.Clone()
	c.entries[draft.BrandID] = memoryEntry{draft: d, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryDraftCache) Invalidate(_ context.Context, ownerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, ownerID)
	return nil
}

var _ DraftCache = (*MemoryDraftCache)(nil)
