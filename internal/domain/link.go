package domain

import "time"

type Link struct {
	ID          int64
	ShortCode   string
	OriginalURL string
	IsActive    bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// Expired reports whether the link has an expiration strictly before now.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

type ClickEvent struct {
	LinkID     int64
	OccurredAt time.Time
}

type LinkStats struct {
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
