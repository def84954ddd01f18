package api

import (
	"context"
	"fmt"

	"github.com/conectavoz/conectavoz/internal/models"
)

// ReportSubmission is a new voice report. Attachments are local file
// paths uploaded alongside the report.
type ReportSubmission struct {
	Title       string
	Content     string
	Category    string
	Attachments []string
}

// ListReports returns the voice reports visible to the caller: their own
// for colaboradores, their scope for Conectas and elevated roles.
func (c *Client) ListReports(ctx context.Context) ([]models.VoiceReport, error) {
	var page Page[models.VoiceReport]
	if err := c.get(ctx, "/voice/reports/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// SubmitReport files a confidential report. This is the one multipart
// operation in the client; everything else is JSON.
func (c *Client) SubmitReport(ctx context.Context, sub ReportSubmission) (*models.VoiceReport, error) {
	fields := map[string]string{
		"title":    sub.Title,
		"content":  sub.Content,
		"category": sub.Category,
	}
	var report models.VoiceReport
	if err := c.upload(ctx, "/voice/reports/", fields, sub.Attachments, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// VoiceCategories lists the report categories offered by the backend.
func (c *Client) VoiceCategories(ctx context.Context) ([]models.VoiceCategory, error) {
	var page Page[models.VoiceCategory]
	if err := c.get(ctx, "/voice/categories/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// UpdateReportStatus moves a report through its lifecycle. Restricted to
// the report's Conecta and elevated roles server-side.
func (c *Client) UpdateReportStatus(ctx context.Context, reportID int64, status string) (*models.VoiceReport, error) {
	body := map[string]string{"status": status}
	var report models.VoiceReport
	if err := c.patch(ctx, fmt.Sprintf("/voice/reports/%d/", reportID), body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
