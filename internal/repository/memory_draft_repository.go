package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// MemoryDraftRepository keeps drafts in process. Used with DB_DRIVER=memory and in tests.
type MemoryDraftRepository struct {
	mu     sync.Mutex
	drafts map[string][]*model.Draft // by owner
}

func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{drafts: make(map[string][]*model.Draft)}
}

func (r *MemoryDraftRepository) GetLatestByOwner(ctx context.Context, ownerID string) (*model.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := r.latest(ownerID)
	if latest == nil {
		return nil, nil
	}
	out := *latest
	out.Payload.Form = latest.Payload.Form.Clone()
	return &out, nil
}

func (r *MemoryDraftRepository) Upsert(ctx context.Context, ownerID string, payload model.DraftPayload, at time.Time) (*model.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	payload.Form = payload.Form.Clone()
	d := r.latest(ownerID)
	if d == nil {
		d = &model.Draft{ID: uuid.NewString(), BrandID: ownerID}
		r.drafts[ownerID] = append(r.drafts[ownerID], d)
	}
	d.Payload = payload
	d.UpdatedAt = at

	out := *d
	out.Payload.Form = d.Payload.Form.Clone()
	return &out, nil
}

func (r *MemoryDraftRepository) Delete(ctx context.Context, ownerID, draftID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.drafts[ownerID]
	for i, d := range rows {
		if d.ID == draftID {
			r.drafts[ownerID] = append(rows[:i], rows[i+1:]...)
			break
		}
	}
	if len(r.drafts[ownerID]) == 0 {
		delete(r.drafts, ownerID)
	}
	return nil
}

// Count returns how many rows the owner has.
func (r *MemoryDraftRepository) Count(ownerID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts[ownerID])
}

func (r *MemoryDraftRepository) latest(ownerID string) *model.Draft {
	var latest *model.Draft
	for _, d := range r.drafts[ownerID] {
		if latest == nil || d.UpdatedAt.After(latest.UpdatedAt) {
			latest = d
		}
	}
	return latest
}

var _ DraftRepositoryInterface = (*MemoryDraftRepository)(nil)
