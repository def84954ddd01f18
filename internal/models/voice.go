package models

import "time"

// Voice report lifecycle states.
const (
	ReportOpen     = "open"
	ReportInReview = "in_review"
	ReportResolved = "resolved"
)

// VoiceReport is a confidential feedback submission routed to the
// author's assigned Conecta.
type VoiceReport struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Protocol    string    `json:"protocol,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VoiceCategory is a report category offered by the backend.
type VoiceCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
