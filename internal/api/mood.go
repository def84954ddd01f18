package api

import (
	"context"

	"github.com/conectavoz/conectavoz/internal/models"
)

// SubmitCheckin records today's mood. The backend rejects a second
// submission on the same day with HTTP 409.
func (c *Client) SubmitCheckin(ctx context.Context, level int, comment string) (*models.MoodCheckin, error) {
	body := map[string]any{
		"mood_level": level,
		"comment":    comment,
	}
	var checkin models.MoodCheckin
	if err := c.post(ctx, "/mood/checkin/", body, &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

// ListCheckins returns the current user's check-in history.
func (c *Client) ListCheckins(ctx context.Context) ([]models.MoodCheckin, error) {
	var page Page[models.MoodCheckin]
	if err := c.get(ctx, "/mood/checkins/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// MyMoodHistory returns the caller's full check-in history, including
// entries older than the default listing window.
func (c *Client) MyMoodHistory(ctx context.Context) ([]models.MoodCheckin, error) {
	var page Page[models.MoodCheckin]
	if err := c.get(ctx, "/mood/my-history/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// MoodStats returns the aggregate mood summary for the current user.
func (c *Client) MoodStats(ctx context.Context) (*models.MoodStats, error) {
	var stats models.MoodStats
	if err := c.get(ctx, "/mood/stats/", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
