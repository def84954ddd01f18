package models

// DashboardStats is the headline figures block of the analytics dashboard.
type DashboardStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalCheckins  int     `json:"total_checkins"`
	AverageMood    float64 `json:"average_mood"`
	OpenReports    int     `json:"open_reports"`
	ActiveConectas int     `json:"active_conectas"`
}

// MoodPoint is one bucket of the mood time series.
type MoodPoint struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// MoodAnalytics is the mood trend report over a period such as "30d".
type MoodAnalytics struct {
	Period string      `json:"period"`
	Points []MoodPoint `json:"points"`
}

// VoiceAnalytics aggregates voice reports by category and status.
type VoiceAnalytics struct {
	Period     string         `json:"period"`
	ByCategory map[string]int `json:"by_category"`
	ByStatus   map[string]int `json:"by_status"`
}
