package handler

//go:generate go tool mockery

import (
	"context"

	"linkshortener/internal/domain"
	"linkshortener/internal/service"
)

type LinkService interface {
	Create(ctx context.Context, in service.CreateInput) (*domain.CreateLinkResponse, error)
	Resolve(ctx context.Context, shortCode string) (string, error)
	Stats(ctx context.Context, shortCode string) (*domain.LinkStats, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
