package domain

import "time"

// Click is one attributed visit to a short link. Geo fields are nullable:
// they are filled only when the geolocation lookup succeeds in time.
type Click struct {
	ID             int64     `json:"id"`
	LinkID         int64     `json:"link_id"`
	IPAddress      *string   `json:"ip_address"`
	Country        *string   `json:"country"`
	City           *string   `json:"city"`
	UserAgent      string    `json:"user_agent"`
	Referer        *string   `json:"referer"`
	Device         string    `json:"device"`
	Browser        string    `json:"browser"`
	OS             string    `json:"os"`
	ViewportWidth  int       `json:"viewport_width"`
	ViewportHeight int       `json:"viewport_height"`
	CreatedAt      time.Time `json:"created_at"`
}

// Visit carries the raw signals observed on the incoming request, before
// classification and enrichment.
type Visit struct {
	UserAgent      string
	Referer        string
	RemoteIP       string
	ViewportWidth  int
	ViewportHeight int
}
