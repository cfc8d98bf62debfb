package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

func newTestRepository(t *testing.T) (*repository.LinkRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return repository.NewLinkRepository(mock), mock
}

func TestMigrate(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS links").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, repo.Migrate(context.Background()))
}

func TestMigrate_Error(t *testing.T) {
	repo, mock := newTestRepository(t)

	expectedErr := errors.New("permission denied")
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS links").WillReturnError(expectedErr)

	err := repo.Migrate(context.Background())
	assert.ErrorIs(t, err, expectedErr)
}

// InsertLink tests

func TestInsertLink_Success(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO links").
		WithArgs("abc123", "https://example.com/page", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.InsertLink(context.Background(), "abc123", "https://example.com/page", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestInsertLink_UniqueViolation(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO links").
		WithArgs("abc123", "http://y.com/b", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "links_short_code_key",
			Message:        `duplicate key value violates unique constraint "links_short_code_key"`,
		})

	_, err := repo.InsertLink(context.Background(), "abc123", "http://y.com/b", nil)
	assert.ErrorIs(t, err, repository.ErrDuplicateShortCode)
}

func TestInsertLink_OtherPgError(t *testing.T) {
	repo, mock := newTestRepository(t)

	pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}
	mock.ExpectQuery("INSERT INTO links").
		WithArgs("abc123", "https://example.com/page", pgxmock.AnyArg()).
		WillReturnError(pgErr)

	_, err := repo.InsertLink(context.Background(), "abc123", "https://example.com/page", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateShortCode)
	assert.ErrorIs(t, err, pgErr)
}

// FindActiveLink tests

func TestFindActiveLink_Found(t *testing.T) {
	repo, mock := newTestRepository(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	expires := created.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT id, short_code, original_url").
		WithArgs("abc123").
		WillReturnRows(pgxmock.NewRows([]string{"id", "short_code", "original_url", "is_active", "expires_at", "created_at"}).
			AddRow(int64(7), "abc123", "https://example.com/page", true, &expires, created))

	link, err := repo.FindActiveLink(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), link.ID)
	assert.Equal(t, "abc123", link.ShortCode)
	assert.Equal(t, "https://example.com/page", link.OriginalURL)
	assert.True(t, link.IsActive)
	require.NotNil(t, link.ExpiresAt)
	assert.Equal(t, expires, *link.ExpiresAt)
	assert.Equal(t, created, link.CreatedAt)
}

func TestFindActiveLink_NoExpiration(t *testing.T) {
	repo, mock := newTestRepository(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, short_code, original_url").
		WithArgs("abc123").
		WillReturnRows(pgxmock.NewRows([]string{"id", "short_code", "original_url", "is_active", "expires_at", "created_at"}).
			AddRow(int64(7), "abc123", "https://example.com/page", true, (*time.Time)(nil), created))

	link, err := repo.FindActiveLink(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Nil(t, link.ExpiresAt)
}

func TestFindActiveLink_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT id, short_code, original_url").
		WithArgs("doesnotexist").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindActiveLink(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, repository.ErrLinkNotFound)
}

func TestFindActiveLink_SkipsInactiveRows(t *testing.T) {
	repo, mock := newTestRepository(t)

	// A deactivated row is filtered out by the query, so the store reports no rows.
	mock.ExpectQuery(regexp.QuoteMeta("FROM links WHERE short_code = $1 AND is_active = TRUE")).
		WithArgs("retired").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindActiveLink(context.Background(), "retired")
	assert.ErrorIs(t, err, repository.ErrLinkNotFound)
}

func TestFindActiveLink_DBError(t *testing.T) {
	repo, mock := newTestRepository(t)

	expectedErr := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, short_code, original_url").
		WithArgs("abc123").
		WillReturnError(expectedErr)

	_, err := repo.FindActiveLink(context.Background(), "abc123")
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, repository.ErrLinkNotFound)
}

// Click tests

func TestRecordClick(t *testing.T) {
	repo, mock := newTestRepository(t)

	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO clicks").
		WithArgs(int64(7), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.RecordClick(context.Background(), 7, at))
}

func TestRecordClick_Error(t *testing.T) {
	repo, mock := newTestRepository(t)

	expectedErr := errors.New("foreign key violation")
	mock.ExpectExec("INSERT INTO clicks").
		WithArgs(int64(7), pgxmock.AnyArg()).
		WillReturnError(expectedErr)

	err := repo.RecordClick(context.Background(), 7, time.Now())
	assert.ErrorIs(t, err, expectedErr)
}

func TestRecordClicks_CopiesBatch(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectCopyFrom(pgx.Identifier{"clicks"}, []string{"link_id", "occurred_at"}).
		WillReturnResult(2)

	events := []domain.ClickEvent{
		{LinkID: 1, OccurredAt: time.Now()},
		{LinkID: 2, OccurredAt: time.Now()},
	}
	require.NoError(t, repo.RecordClicks(context.Background(), events))
}

func TestRecordClicks_Empty(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.RecordClicks(context.Background(), nil))
}

func TestRecordClicks_Error(t *testing.T) {
	repo, mock := newTestRepository(t)

	expectedErr := errors.New("copy failed")
	mock.ExpectCopyFrom(pgx.Identifier{"clicks"}, []string{"link_id", "occurred_at"}).
		WillReturnError(expectedErr)

	err := repo.RecordClicks(context.Background(), []domain.ClickEvent{{LinkID: 1, OccurredAt: time.Now()}})
	assert.ErrorIs(t, err, expectedErr)
}

func TestCountClicks(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT count").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountClicks(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
