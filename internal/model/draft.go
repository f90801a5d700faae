// internal/model/draft.go
package model

import "time"

// Draft is the persisted in-progress campaign of one brand user.
type Draft struct {
	ID        string       `db:"id" json:"id"`
	BrandID   string       `db:"brand_id" json:"brand_id"`
	Payload   DraftPayload `db:"payload" json:"payload"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// DraftPayload is the JSON projection of a wizard session.
type DraftPayload struct {
	CurrentStep int      `json:"current_step"`
	Form        FormData `json:"form"`
}
