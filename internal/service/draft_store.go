// internal/service/draft_store.go
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/cache"
	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/metrics"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/repository"
)

// DraftStore persists the single in-progress draft of each owner and keeps
// the draft cache consistent with it.
type DraftStore struct {
	Repo  repository.DraftRepositoryInterface
	Cache cache.DraftCache
	Log   *zap.Logger
	Now   func() time.Time

	// gens counts invalidations per owner. A read only fills the cache if no
	// save or clear invalidated the owner while it was in flight.
	mu   sync.Mutex
	gens map[string]uint64
}

func NewDraftStore(repo repository.DraftRepositoryInterface, c cache.DraftCache, log *zap.Logger) *DraftStore {
	return &DraftStore{Repo: repo, Cache: c, Log: log, Now: time.Now, gens: make(map[string]uint64)}
}

// Load returns the owner's most recent draft, or nil when there is none.
// Fetch failures come back as *appErrors.DraftLoadError.
func (s *DraftStore) Load(ctx context.Context, ownerID string) (*model.Draft, error) {
	if d, ok, err := s.Cache.Get(ctx, ownerID); err != nil {
		s.Log.Warn("draft cache read failed", zap.String("owner_id", ownerID), zap.Error(err))
	} else if ok {
		metrics.DraftCacheLookupsTotal.WithLabelValues("hit").Inc()
		return d, nil
	}
	metrics.DraftCacheLookupsTotal.WithLabelValues("miss").Inc()

	gen := s.generation(ownerID)
	d, err := s.Repo.GetLatestByOwner(ctx, ownerID)
	if err != nil {
		metrics.DraftOperationsTotal.WithLabelValues("load", "error").Inc()
		return nil, appErrors.NewDraftLoadError(ownerID, err)
	}
	metrics.DraftOperationsTotal.WithLabelValues("load", "ok").Inc()
	if d == nil {
		return nil, nil
	}

	s.fill(ctx, ownerID, gen, d)
	return d, nil
}

// Save upserts the owner's draft and refreshes its timestamp.
func (s *DraftStore) Save(ctx context.Context, ownerID string, payload model.DraftPayload) (*model.Draft, error) {
	d, err := s.Repo.Upsert(ctx, ownerID, payload, s.Now().UTC())
	s.invalidate(ctx, ownerID)
	if err != nil {
		metrics.DraftOperationsTotal.WithLabelValues("save", "error").Inc()
		s.Log.Warn("draft save failed", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	metrics.DraftOperationsTotal.WithLabelValues("save", "ok").Inc()
	s.Log.Debug("draft saved", zap.String("owner_id", ownerID), zap.String("draft_id", d.ID), zap.Int("current_step", payload.CurrentStep))
	return d, nil
}

// Clear deletes the draft owned by ownerID with id draftID. An empty id is a no-op.
func (s *DraftStore) Clear(ctx context.Context, ownerID, draftID string) error {
	if draftID == "" {
		return nil
	}
	err := s.Repo.Delete(ctx, ownerID, draftID)
	s.invalidate(ctx, ownerID)
	if err != nil {
		metrics.DraftOperationsTotal.WithLabelValues("clear", "error").Inc()
		return err
	}
	metrics.DraftOperationsTotal.WithLabelValues("clear", "ok").Inc()
	s.Log.Info("draft cleared", zap.String("owner_id", ownerID), zap.String("draft_id", draftID))
	return nil
}

func (s *DraftStore) generation(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[ownerID]
}

// fill caches d unless the owner was invalidated since gen was read.
func (s *DraftStore) fill(ctx context.Context, ownerID string, gen uint64, d *model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[ownerID] != gen {
		s.Log.Debug("draft changed during load, not caching", zap.String("owner_id", ownerID))
		return
	}
	if err := s.Cache.Set(ctx, d); err != nil {
		s.Log.Warn("draft cache write failed", zap.String("owner_id", ownerID), zap.Error(err))
	}
}

func (s *DraftStore) invalidate(ctx context.Context, ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens == nil {
		s.gens = make(map[string]uint64)
	}
	s.gens[ownerID]++
	if err := s.Cache.Invalidate(context.WithoutCancel(ctx), ownerID); err != nil {
		s.Log.Warn("draft cache invalidation failed", zap.String("owner_id", ownerID), zap.Error(err))
	}
}
