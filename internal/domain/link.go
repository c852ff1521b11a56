package domain

import "time"

// Link is one short-code to destination mapping. Ownership is optional:
// links created from the landing page have no user attached.
type Link struct {
	ID            int64      `json:"id"`
	ShortCode     string     `json:"short_code"`
	OriginalURL   string     `json:"original_url"`
	Title         string     `json:"title,omitempty"`
	IsActive      bool       `json:"is_active"`
	Clicks        int64      `json:"clicks"`
	LastClickedAt *time.Time `json:"last_clicked_at"`
	UserID        *int64     `json:"user_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateLinkRequest struct {
	OriginalURL string `json:"url" validate:"required"`
	CustomAlias string `json:"custom_alias,omitempty" validate:"omitempty,min=4,max=20,alias"`
	Title       string `json:"title,omitempty" validate:"omitempty,max=120"`
	UserID      *int64 `json:"-"`
}

// VerdictKind classifies one resolution attempt.
type VerdictKind int

const (
	VerdictServable VerdictKind = iota
	VerdictInactive
	VerdictNotFound
	VerdictTransient
)

// Verdict is the outcome of resolving a short code. Link is set for
// Servable and Inactive; Err is set for Transient only.
type Verdict struct {
	Kind VerdictKind
	Link *Link
	Err  error
}

func Servable(link *Link) Verdict   { return Verdict{Kind: VerdictServable, Link: link} }
func Inactive(link *Link) Verdict   { return Verdict{Kind: VerdictInactive, Link: link} }
func NotFound() Verdict             { return Verdict{Kind: VerdictNotFound} }
func Transient(err error) Verdict   { return Verdict{Kind: VerdictTransient, Err: err} }
