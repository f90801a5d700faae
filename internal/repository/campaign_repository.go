package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/unclebandit/creatorhub-backend/internal/db"
	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
	GetByID(ctx context.Context, brandID string, id int) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, brandID string, offset, limit int, status string) ([]*model.Campaign, int, error)
	UpdateStatus(ctx context.Context, brandID string, id int, status string) error
}

type campaignRow struct {
	model.Campaign
	Payload db.JSONB[model.FormData] `db:"payload"`
}

func (r *campaignRow) toModel() *model.Campaign {
	c := r.Campaign
	c.Form = r.Payload.Data
	return &c
}

const campaignColumns = `id, brand_id, name, description, objective, category, total_budget, currency, payment_model, status, payload, created_at, updated_at`

type CampaignRepository struct {
	DB *sqlx.DB
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	c.CreatedAt = time.Now().UTC()
	if c.Status == "" {
		c.Status = model.CampaignStatusPendingReview
	}
	query := `
        INSERT INTO campaigns (brand_id, name, description, objective, category, total_budget, currency, payment_model, status, payload, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		c.BrandID, c.Name, c.Description, c.Objective, c.Category,
		c.TotalBudget, c.Currency, c.PaymentModel, c.Status,
		db.JSONB[model.FormData]{Data: c.Form}, c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(ctx context.Context, brandID string, id int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1 AND brand_id=$2`
	var row campaignRow
	if err := r.DB.GetContext(ctx, &row, query, id, brandID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, brandID string, offset, limit int, status string) ([]*model.Campaign, int, error) {
	where := ` WHERE brand_id=$1`
	args := []interface{}{brandID}
	argPos := 2

	if status != "" {
		where += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}

	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM campaigns`+where, args...); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns` + where +
		fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	var rows []campaignRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	campaigns := make([]*model.Campaign, 0, len(rows))
	for i := range rows {
		campaigns = append(campaigns, rows[i].toModel())
	}
	return campaigns, total, nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, brandID string, id int, status string) error {
	query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3 AND brand_id=$4`
	res, err := r.DB.ExecContext(ctx, query, status, time.Now().UTC(), id, brandID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// ====================== In-memory ======================

type MemoryCampaignRepository struct {
	mu        sync.Mutex
	nextID    int
	campaigns map[int]*model.Campaign
}

func NewMemoryCampaignRepository() *MemoryCampaignRepository {
	return &MemoryCampaignRepository{campaigns: make(map[int]*model.Campaign)}
}

func (r *MemoryCampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now().UTC()
	if c.Status == "" {
		c.Status = model.CampaignStatusPendingReview
	}
	stored := *c
	r.campaigns[c.ID] = &stored
	return nil
}

func (r *MemoryCampaignRepository) GetByID(ctx context.Context, brandID string, id int) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[id]
	if !ok || c.BrandID != brandID {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	out := *c
	return &out, nil
}

func (r *MemoryCampaignRepository) ListCampaigns(ctx context.Context, brandID string, offset, limit int, status string) ([]*model.Campaign, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []*model.Campaign
	for _, c := range r.campaigns {
		if c.BrandID != brandID || (status != "" && c.Status != status) {
			continue
		}
		out := *c
		filtered = append(filtered, &out)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })

	total := len(filtered)
	if offset >= total {
		return []*model.Campaign{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func (r *MemoryCampaignRepository) UpdateStatus(ctx context.Context, brandID string, id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.campaigns[id]
	if !ok || c.BrandID != brandID {
		return appErrors.NewCampaignNotFound(id)
	}
	now := time.Now().UTC()
	c.Status = status
	c.UpdatedAt = &now
	return nil
}

var _ CampaignRepositoryInterface = (*MemoryCampaignRepository)(nil)
