package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/unclebandit/creatorhub-backend/internal/db"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// DraftRepositoryInterface is the table accessor behind the draft store.
// Every call is scoped by owner.
type DraftRepositoryInterface interface {
	// GetLatestByOwner returns the most recently updated draft, or nil when none exists.
	GetLatestByOwner(ctx context.Context, ownerID string) (*model.Draft, error)
	// Upsert updates the owner's latest draft or inserts one.
	Upsert(ctx context.Context, ownerID string, payload model.DraftPayload, at time.Time) (*model.Draft, error)
	// Delete removes the draft matching both owner and id. Missing rows are not an error.
	Delete(ctx context.Context, ownerID, draftID string) error
}

type draftRow struct {
	ID        string                       `db:"id"`
	BrandID   string                       `db:"brand_id"`
	Payload   db.JSONB[model.DraftPayload] `db:"payload"`
	UpdatedAt time.Time                    `db:"updated_at"`
}

func (r draftRow) toModel() *model.Draft {
	return &model.Draft{
		ID:        r.ID,
		BrandID:   r.BrandID,
		Payload:   r.Payload.Data,
		UpdatedAt: r.UpdatedAt,
	}
}

type DraftRepository struct {
	DB *sqlx.DB
}

func (r *DraftRepository) GetLatestByOwner(ctx context.Context, ownerID string) (*model.Draft, error) {
	query := `
        SELECT id, brand_id, payload, updated_at
        FROM campaign_drafts
        WHERE brand_id=$1
        ORDER BY updated_at DESC
        LIMIT 1
    `
	var row draftRow
	if err := r.DB.GetContext(ctx, &row, query, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *DraftRepository) Upsert(ctx context.Context, ownerID string, payload model.DraftPayload, at time.Time) (*model.Draft, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// SELECT ... FOR UPDATE locks nothing before the first row exists, so
	// concurrent first saves serialise on a per-owner advisory lock instead.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerID); err != nil {
		return nil, err
	}

	var id string
	err = tx.GetContext(ctx, &id, `
        SELECT id FROM campaign_drafts
        WHERE brand_id=$1
        ORDER BY updated_at DESC
        LIMIT 1
        FOR UPDATE
    `, ownerID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		_, err = tx.ExecContext(ctx, `
            INSERT INTO campaign_drafts (id, brand_id, payload, updated_at)
            VALUES ($1, $2, $3, $4)
        `, id, ownerID, db.JSONB[model.DraftPayload]{Data: payload}, at)
	case err == nil:
		_, err = tx.ExecContext(ctx, `
            UPDATE campaign_drafts
            SET payload=$1, updated_at=$2
            WHERE id=$3 AND brand_id=$4
        `, db.JSONB[model.DraftPayload]{Data: payload}, at, id, ownerID)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Draft{ID: id, BrandID: ownerID, Payload: payload, UpdatedAt: at}, nil
}

func (r *DraftRepository) Delete(ctx context.Context, ownerID, draftID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM campaign_drafts WHERE id=$1 AND brand_id=$2`, draftID, ownerID)
	return err
}

var _ DraftRepositoryInterface = (*DraftRepository)(nil)
