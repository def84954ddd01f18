package api

import (
	"context"
	"net/url"

	"github.com/conectavoz/conectavoz/internal/models"
)

// DashboardStats returns the headline figures for the analytics
// dashboard. Restricted to diretoria and admin server-side.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.get(ctx, "/reports/stats/", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Dashboard returns the widget payload for the reports dashboard.
func (c *Client) Dashboard(ctx context.Context) (map[string]any, error) {
	var data map[string]any
	if err := c.get(ctx, "/reports/dashboard/", &data); err != nil {
		return nil, err
	}
	return data, nil
}

// MoodAnalytics returns the mood trend over a period such as "30d".
func (c *Client) MoodAnalytics(ctx context.Context, period string) (*models.MoodAnalytics, error) {
	var analytics models.MoodAnalytics
	path := "/reports/mood-analytics/?period=" + url.QueryEscape(period)
	if err := c.get(ctx, path, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// VoiceAnalytics returns voice report aggregates over a period.
func (c *Client) VoiceAnalytics(ctx context.Context, period string) (*models.VoiceAnalytics, error) {
	var analytics models.VoiceAnalytics
	path := "/reports/voice-analytics/?period=" + url.QueryEscape(period)
	if err := c.get(ctx, path, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// ExportReport downloads a report file (csv or xlsx) as raw bytes.
func (c *Client) ExportReport(ctx context.Context, format, reportType string) ([]byte, error) {
	query := url.Values{}
	query.Set("format", format)
	query.Set("type", reportType)
	return c.download(ctx, "/reports/export/?"+query.Encode())
}
