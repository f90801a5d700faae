package wizard

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

const (
	savedTitleTemplate   = "Step {step} Complete"
	savedMessageTemplate = "{label} saved successfully"
	failedTitle          = "Draft Not Saved"
	failedMessage        = "We couldn't save your progress. You can keep going and we'll try again on the next step."
)

// RenderTemplate replaces {key} placeholders with values from data.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

func savedNotice(ownerID string, step int, at time.Time) model.Notice {
	data := map[string]string{
		"step":  strconv.Itoa(step),
		"label": StepLabel(step),
	}
	return model.Notice{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      model.NoticeSuccess,
		Step:      step,
		Title:     RenderTemplate(savedTitleTemplate, data),
		Message:   RenderTemplate(savedMessageTemplate, data),
		CreatedAt: at,
	}
}

func failedNotice(ownerID string, step int, at time.Time) model.Notice {
	return model.Notice{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      model.NoticeWarning,
		Step:      step,
		Title:     failedTitle,
		Message:   failedMessage,
		CreatedAt: at,
	}
}
