package models

import "time"

// MoodCheckin is a single daily mood submission.
type MoodCheckin struct {
	ID        int64     `json:"id"`
	MoodLevel int       `json:"mood_level"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodLabels maps a mood level (1-5) to its display label.
var MoodLabels = map[int]string{
	1: "terrible",
	2: "bad",
	3: "okay",
	4: "good",
	5: "great",
}

// MoodStats is the aggregate mood summary for the current user.
type MoodStats struct {
	Average      float64 `json:"average"`
	Total        int     `json:"total"`
	CurrentWeek  float64 `json:"current_week,omitempty"`
	PreviousWeek float64 `json:"previous_week,omitempty"`
	Streak       int     `json:"streak,omitempty"`
}
