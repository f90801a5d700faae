// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveTimeout is reported when a draft save loses the race against the step timer.
	ErrSaveTimeout = errors.New("draft save timed out")
	// ErrMissingOwner is returned when a request carries no owner identity.
	ErrMissingOwner = errors.New("missing owner id")
	// ErrUnknownSection is returned for a wizard section name outside basics/content/budget/review.
	ErrUnknownSection = errors.New("unknown wizard section")
	// ErrDraftNotLoaded refuses an autosave that would overwrite a stored draft the session never read.
	ErrDraftNotLoaded = errors.New("stored draft not loaded")
	// ErrDraftNotFound is returned when the owner has no stored draft.
	ErrDraftNotFound = errors.New("draft not found")
)

// ErrCampaignNotFound is returned when a campaign does not exist for the owner.
type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// NewCampaignNotFound is a helper constructor.
func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// DraftLoadError wraps any draft fetch failure other than "no rows".
type DraftLoadError struct {
	OwnerID string
	Err     error
}

func (e *DraftLoadError) Error() string {
	return fmt.Sprintf("load draft for owner %s: %v", e.OwnerID, e.Err)
}

func (e *DraftLoadError) Unwrap() error { return e.Err }

func NewDraftLoadError(ownerID string, err error) error {
	return &DraftLoadError{OwnerID: ownerID, Err: err}
}

// ValidationError carries per-field messages from section validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func IsNotFound(err error) bool {
	var nf *ErrCampaignNotFound
	return errors.As(err, &nf) || errors.Is(err, ErrDraftNotFound)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
