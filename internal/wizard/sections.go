package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

const (
	SectionBasics  = "basics"
	SectionContent = "content"
	SectionBudget  = "budget"
	SectionReview  = "review"
)

// DecodeSection parses a section body into a partial form. Keys that do not
// belong to the section are rejected.
func DecodeSection(section string, raw []byte) (model.FormData, error) {
	var partial model.FormData
	var target any
	switch section {
	case SectionBasics:
		target = &partial.BasicsFields
	case SectionContent:
		target = &partial.ContentFields
	case SectionBudget:
		target = &partial.BudgetFields
	case SectionReview:
		target = &partial.ReviewFields
	default:
		return partial, fmt.Errorf("%w: %q", appErrors.ErrUnknownSection, section)
	}

	if err := decodeStrict(raw, target); err != nil {
		return model.FormData{}, fmt.Errorf("decode %s section: %w", section, err)
	}
	return partial, nil
}

// DecodeForm parses a flat form body, rejecting unknown keys.
func DecodeForm(raw []byte) (model.FormData, error) {
	var partial model.FormData
	if len(bytes.TrimSpace(raw)) == 0 {
		return partial, nil
	}
	if err := decodeStrict(raw, &partial); err != nil {
		return model.FormData{}, fmt.Errorf("decode form: %w", err)
	}
	return partial, nil
}

func decodeStrict(raw []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
