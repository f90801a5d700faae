package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

func TestCampaignRepository_Create(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := &CampaignRepository{DB: conn}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
		WithArgs("brand-1", "Launch", "", "", "", 500.0, "USD", "fixed", model.CampaignStatusPendingReview, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	c := &model.Campaign{BrandID: "brand-1", Name: "Launch", TotalBudget: 500, Currency: "USD", PaymentModel: "fixed"}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, 42, c.ID)
	assert.Equal(t, model.CampaignStatusPendingReview, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_GetByIDNotFound(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := &CampaignRepository{DB: conn}

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns WHERE id=$1 AND brand_id=$2")).
		WithArgs(7, "brand-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "brand-1", 7)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestCampaignRepository_ListCampaignsFiltersByStatus(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := &CampaignRepository{DB: conn}
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM campaigns WHERE brand_id=$1 AND status=$2")).
		WithArgs("brand-1", "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT $3 OFFSET $4")).
		WithArgs("brand-1", "active", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "brand_id", "name", "description", "objective", "category", "total_budget",
			"currency", "payment_model", "status", "payload", "created_at", "updated_at",
		}).AddRow(3, "brand-1", "Launch", "", "", "", 100.0, "USD", "fixed", "active", []byte(`{"name":"Launch"}`), now, nil))

	campaigns, total, err := repo.ListCampaigns(context.Background(), "brand-1", 0, 10, "active")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Launch", *campaigns[0].Form.Name)
	assert.Nil(t, campaigns[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryCampaignRepository_PaginatesNewestFirst(t *testing.T) {
	repo := NewMemoryCampaignRepository()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &model.Campaign{BrandID: "brand-1", Name: "C"}))
	}
	require.NoError(t, repo.Create(ctx, &model.Campaign{BrandID: "brand-2", Name: "Other"}))

	page, total, err := repo.ListCampaigns(ctx, "brand-1", 0, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Greater(t, page[0].ID, page[1].ID)

	_, err = repo.GetByID(ctx, "brand-1", 6)
	assert.True(t, appErrors.IsNotFound(err))

	require.NoError(t, repo.UpdateStatus(ctx, "brand-1", 1, model.CampaignStatusActive))
	active, total, err := repo.ListCampaigns(ctx, "brand-1", 0, 10, model.CampaignStatusActive)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, active[0].ID)
}
