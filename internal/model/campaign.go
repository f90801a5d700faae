// internal/model/campaign.go
package model

import "time"

const (
	CampaignStatusPendingReview = "pending_review"
	CampaignStatusActive        = "active"
	CampaignStatusCompleted     = "completed"
)

// Campaign is a submitted wizard draft.
type Campaign struct {
	ID           int        `db:"id" json:"id"`
	BrandID      string     `db:"brand_id" json:"brand_id"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description"`
	Objective    string     `db:"objective" json:"objective"`
	Category     string     `db:"category" json:"category"`
	TotalBudget  float64    `db:"total_budget" json:"total_budget"`
	Currency     string     `db:"currency" json:"currency"`
	PaymentModel string     `db:"payment_model" json:"payment_model"`
	Status       string     `db:"status" json:"status"`
	Form         FormData   `db:"-" json:"form"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// NewCampaignFromForm copies the submitted form into a campaign awaiting review.
func NewCampaignFromForm(brandID string, form FormData) *Campaign {
	basics := form.Basics()
	budget := form.Budget()
	return &Campaign{
		BrandID:      brandID,
		Name:         basics.Name,
		Description:  basics.Description,
		Objective:    basics.Objective,
		Category:     basics.Category,
		TotalBudget:  budget.TotalBudget,
		Currency:     budget.Currency,
		PaymentModel: budget.PaymentModel,
		Status:       CampaignStatusPendingReview,
		Form:         form.Clone(),
	}
}
