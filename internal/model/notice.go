// internal/model/notice.go
package model

import "time"

const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
)

// Notice is a user-facing toast produced by the wizard.
type Notice struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Kind       string    `json:"kind"` // success, warning
	Step       int       `json:"step"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	RetryCount int       `json:"retry_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Text joins title and message the way the toast renders them.
func (n Notice) Text() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + " — " + n.Message
}
