package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"linkshortener/internal/domain"
)

type Repository interface {
	InsertLink(ctx context.Context, shortCode, originalURL string, expiresAt *time.Time) (int64, error)
	FindActiveLink(ctx context.Context, shortCode string) (*domain.Link, error)
	CountClicks(ctx context.Context, linkID int64) (int64, error)
}

type Cache interface {
	Get(shortCode string) (*domain.Link, bool)
	Set(link *domain.Link)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type URLValidator interface {
	ValidateURL(rawURL string) error
}

// ClickRecorder must return immediately; the write happens elsewhere.
type ClickRecorder interface {
	RecordClick(linkID int64, at time.Time)
}

type BusinessRecorder interface {
	RecordCreate(outcome string)
	RecordResolve(outcome string)
}
