package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

const outcomeOK = "ok"

type CreateInput struct {
	URL string
	// CustomCode is stored verbatim when non-empty; otherwise a code is generated.
	CustomCode *string
	ExpiresAt  *time.Time
}

type LinkService struct {
	repo      Repository
	generator CodeGenerator
	validator URLValidator
	cache     Cache
	clicks    ClickRecorder
	recorder  BusinessRecorder
	baseURL   string
}

func NewLinkService(
	repo Repository,
	generator CodeGenerator,
	validator URLValidator,
	cache Cache,
	clicks ClickRecorder,
	recorder BusinessRecorder,
	baseURL string,
) *LinkService {
	return &LinkService{
		repo:      repo,
		generator: generator,
		validator: validator,
		cache:     cache,
		clicks:    clicks,
		recorder:  recorder,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Create stores a new link. A short code collision is reported as ErrConflict
// and is never retried here.
func (s *LinkService) Create(ctx context.Context, in CreateInput) (*domain.CreateLinkResponse, error) {
	resp, err := s.create(ctx, in)
	s.recorder.RecordCreate(outcome(err))
	return resp, err
}

func (s *LinkService) create(ctx context.Context, in CreateInput) (*domain.CreateLinkResponse, error) {
	originalURL := strings.TrimSpace(in.URL)
	if err := s.validator.ValidateURL(originalURL); err != nil {
		return nil, validationError(err.Error())
	}

	now := time.Now()
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return nil, validationError("expires_at must be in the future")
	}

	var shortCode string
	if in.CustomCode != nil {
		shortCode = *in.CustomCode
	}
	if shortCode == "" {
		code, err := s.generator.Generate()
		if err != nil {
			return nil, internalError("generate short code", err)
		}
		shortCode = code
	}

	id, err := s.repo.InsertLink(ctx, shortCode, originalURL, in.ExpiresAt)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateShortCode) {
			return nil, ErrConflict
		}
		return nil, databaseError("insert link", err)
	}

	// CreatedAt is left zero; the store assigns it and Stats reads it from there.
	s.cache.Set(&domain.Link{
		ID:          id,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		IsActive:    true,
		ExpiresAt:   in.ExpiresAt,
	})

	return &domain.CreateLinkResponse{
		ShortCode: shortCode,
		ShortURL:  s.baseURL + "/" + shortCode,
	}, nil
}

// Resolve returns the redirect target for shortCode. Unknown and deactivated
// codes are both ErrNotFound; expired ones are ErrGone. A click is queued for
// every successful resolution.
func (s *LinkService) Resolve(ctx context.Context, shortCode string) (string, error) {
	target, err := s.resolve(ctx, shortCode)
	s.recorder.RecordResolve(outcome(err))
	return target, err
}

func (s *LinkService) resolve(ctx context.Context, shortCode string) (string, error) {
	link, err := s.lookup(ctx, shortCode)
	if err != nil {
		return "", err
	}

	now := time.Now()
	if link.Expired(now) {
		return "", ErrGone
	}

	s.clicks.RecordClick(link.ID, now)

	return link.OriginalURL, nil
}

func (s *LinkService) lookup(ctx context.Context, shortCode string) (*domain.Link, error) {
	if link, ok := s.cache.Get(shortCode); ok {
		return link, nil
	}

	link, err := s.findActive(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	s.cache.Set(link)
	return link, nil
}

func (s *LinkService) findActive(ctx context.Context, shortCode string) (*domain.Link, error) {
	if shortCode == "" {
		return nil, ErrNotFound
	}

	link, err := s.repo.FindActiveLink(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, ErrNotFound
		}
		return nil, databaseError("find link", err)
	}
	return link, nil
}

// Stats reads straight from the store, bypassing the cache.
func (s *LinkService) Stats(ctx context.Context, shortCode string) (*domain.LinkStats, error) {
	link, err := s.findActive(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	clicks, err := s.repo.CountClicks(ctx, link.ID)
	if err != nil {
		return nil, databaseError("count clicks", err)
	}

	return &domain.LinkStats{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		Clicks:      clicks,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
	}, nil
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	return KindOf(err).String()
}
