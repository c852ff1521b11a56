package domain

import "time"

type LinkAnalytics struct {
	ShortCode     string          `json:"short_code"`
	OriginalURL   string          `json:"original_url"`
	TotalClicks   int64           `json:"total_clicks"`
	UniqueIPs     int64           `json:"unique_ips"`
	LastClickedAt *time.Time      `json:"last_clicked_at"`
	CreatedAt     time.Time       `json:"created_at"`
	ClicksByDate  []ClicksByDate  `json:"clicks_by_date"`
	TopReferrers  []ReferrerStats `json:"top_referrers"`
	Devices       []LabelCount    `json:"devices"`
	Browsers      []LabelCount    `json:"browsers"`
	Systems       []LabelCount    `json:"systems"`
}

type ClicksByDate struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ReferrerStats struct {
	Referer string `json:"referer"`
	Count   int64  `json:"count"`
}

// LabelCount is one bucket of a categorical breakdown (device, browser, OS).
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type ClickHistory struct {
	Clicks     []Click `json:"clicks"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}

type LinkList struct {
	Links    []Link `json:"links"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
