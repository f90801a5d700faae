// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Wizard       *WizardService
	Log          *zap.Logger
}

// SubmitResult is returned by Submit.
type SubmitResult struct {
	Campaign     *model.Campaign `json:"campaign"`
	DraftCleared bool            `json:"draft_cleared"`
}

// Submit validates the owner's wizard form, creates the campaign and clears the draft.
// A failed clear is returned together with the created campaign.
func (s *CampaignService) Submit(ctx context.Context, ownerID string) (*SubmitResult, error) {
	sess, err := s.Wizard.Begin(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	form := sess.Form()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	c := model.NewCampaignFromForm(ownerID, form)
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	s.Log.Info("campaign submitted", zap.String("owner_id", ownerID), zap.Int("campaign_id", c.ID))

	result := &SubmitResult{Campaign: c}
	if err := s.Wizard.Reset(ctx, ownerID); err != nil {
		s.Log.Error("campaign submitted but draft not cleared", zap.String("owner_id", ownerID), zap.Error(err))
		return result, err
	}
	result.DraftCleared = true
	return result, nil
}

// ListCampaigns fetches the owner's campaigns with pagination
func (s *CampaignService) ListCampaigns(ctx context.Context, ownerID string, page, pageSize int, status string) ([]model.Campaign, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	ptrs, total, err := s.CampaignRepo.ListCampaigns(ctx, ownerID, offset, pageSize, status)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}

	totalPages := (total + pageSize - 1) / pageSize
	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}

	return campaigns, pagination, nil
}

// GetCampaign fetches one of the owner's campaigns by ID
func (s *CampaignService) GetCampaign(ctx context.Context, ownerID string, id int) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(ctx, ownerID, id)
}

// UpdateStatus moves a campaign to another lifecycle status.
func (s *CampaignService) UpdateStatus(ctx context.Context, ownerID string, id int, status string) error {
	switch status {
	case model.CampaignStatusPendingReview, model.CampaignStatusActive, model.CampaignStatusCompleted:
	default:
		return &appErrors.ValidationError{Fields: map[string]string{"status": "unknown status " + status}}
	}
	return s.CampaignRepo.UpdateStatus(ctx, ownerID, id, status)
}
