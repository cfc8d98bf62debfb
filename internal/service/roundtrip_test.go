package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/cache"
	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
	"linkshortener/internal/shortener"
	"linkshortener/internal/validation"
)

// memStore is an in-memory Repository that also counts clicks.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	links  map[string]domain.Link
	clicks map[int64]int64
}

func newMemStore() *memStore {
	return &memStore{links: map[string]domain.Link{}, clicks: map[int64]int64{}}
}

func (s *memStore) InsertLink(_ context.Context, shortCode, originalURL string, expiresAt *time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[shortCode]; ok {
		return 0, repository.ErrDuplicateShortCode
	}
	s.nextID++
	s.links[shortCode] = domain.Link{
		ID:          s.nextID,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		IsActive:    true,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}
	return s.nextID, nil
}

func (s *memStore) FindActiveLink(_ context.Context, shortCode string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[shortCode]
	if !ok || !link.IsActive {
		return nil, repository.ErrLinkNotFound
	}
	return &link, nil
}

func (s *memStore) CountClicks(_ context.Context, linkID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clicks[linkID], nil
}

func (s *memStore) RecordClick(linkID int64, _ time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks[linkID]++
}

func (s *memStore) deactivate(shortCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link := s.links[shortCode]
	link.IsActive = false
	s.links[shortCode] = link
}

type nopRecorder struct{}

func (nopRecorder) RecordCreate(string)  {}
func (nopRecorder) RecordResolve(string) {}

func newStoreBackedService(t *testing.T, store *memStore, linkCache service.Cache) *service.LinkService {
	t.Helper()
	gen, err := shortener.New(shortener.DefaultLength)
	require.NoError(t, err)
	return service.NewLinkService(
		store, gen, validation.NewURLValidator(0, true), linkCache, store, nopRecorder{}, "https://sho.rt",
	)
}

func TestCreateThenResolve_RedirectsToOriginalURL(t *testing.T) {
	store := newMemStore()
	svc := newStoreBackedService(t, store, cache.Noop{})
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateInput{URL: "  https://example.com/a/b?c=d  "})
	require.NoError(t, err)
	assert.Len(t, created.ShortCode, shortener.DefaultLength)
	assert.Equal(t, "https://sho.rt/"+created.ShortCode, created.ShortURL)

	target, err := svc.Resolve(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a/b?c=d", target)

	stats, err := svc.Stats(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Clicks)
	assert.Equal(t, "https://example.com/a/b?c=d", stats.OriginalURL)
}

func TestCreateThenResolve_CustomCodeConflict(t *testing.T) {
	store := newMemStore()
	svc := newStoreBackedService(t, store, cache.Noop{})
	ctx := context.Background()
	code := "promo-1"

	_, err := svc.Create(ctx, service.CreateInput{URL: "https://a.example", CustomCode: &code})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.CreateInput{URL: "https://b.example", CustomCode: &code})
	require.ErrorIs(t, err, service.ErrConflict)

	target, err := svc.Resolve(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, "https://a.example", target)
}

func TestResolve_DeactivatedWithoutCacheIsNotFound(t *testing.T) {
	store := newMemStore()
	svc := newStoreBackedService(t, store, cache.Noop{})
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateInput{URL: "https://example.com/x"})
	require.NoError(t, err)

	store.deactivate(created.ShortCode)

	_, err = svc.Resolve(ctx, created.ShortCode)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestResolve_DeactivationVisibleAfterCacheTTL(t *testing.T) {
	const ttl = 200 * time.Millisecond

	linkCache, err := cache.New(20, ttl)
	require.NoError(t, err)
	t.Cleanup(linkCache.Close)

	store := newMemStore()
	svc := newStoreBackedService(t, store, linkCache)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateInput{URL: "https://example.com/x"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond) // ristretto applies writes asynchronously

	store.deactivate(created.ShortCode)

	// Within the TTL the cached entry still answers.
	target, err := svc.Resolve(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x", target)

	time.Sleep(ttl + 100*time.Millisecond)

	_, err = svc.Resolve(ctx, created.ShortCode)
	require.ErrorIs(t, err, service.ErrNotFound)
}
