package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"linkshortener/internal/domain"
)

var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrDuplicateShortCode = errors.New("short code already exists")
)

//go:embed schema.sql
var schema string

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

const (
	insertLinkSQL = `INSERT INTO links (short_code, original_url, expires_at)
VALUES ($1, $2, $3)
RETURNING id`

	findActiveLinkSQL = `SELECT id, short_code, original_url, is_active, expires_at, created_at
FROM links
WHERE short_code = $1 AND is_active = TRUE`

	insertClickSQL = `INSERT INTO clicks (link_id, occurred_at) VALUES ($1, $2)`

	countClicksSQL = `SELECT count(*) FROM clicks WHERE link_id = $1`
)

var clickColumns = []string{"link_id", "occurred_at"}

type LinkRepository struct {
	db DB
}

func NewLinkRepository(db DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InsertLink stores a new active link. A short code collision with any
// existing row, active or not, yields ErrDuplicateShortCode.
func (r *LinkRepository) InsertLink(ctx context.Context, shortCode, originalURL string, expiresAt *time.Time) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertLinkSQL, shortCode, originalURL, expiresAt).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateShortCode
		}
		return 0, fmt.Errorf("failed to insert link: %w", err)
	}
	return id, nil
}

// FindActiveLink returns ErrLinkNotFound both for unknown and for deactivated codes.
func (r *LinkRepository) FindActiveLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	var (
		link      domain.Link
		expiresAt *time.Time
	)
	err := r.db.QueryRow(ctx, findActiveLinkSQL, shortCode).Scan(
		&link.ID, &link.ShortCode, &link.OriginalURL, &link.IsActive, &expiresAt, &link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	link.ExpiresAt = expiresAt
	return &link, nil
}

func (r *LinkRepository) RecordClick(ctx context.Context, linkID int64, at time.Time) error {
	if _, err := r.db.Exec(ctx, insertClickSQL, linkID, at); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

func (r *LinkRepository) RecordClicks(ctx context.Context, events []domain.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, len(events))
	for i, e := range events {
		rows[i] = []any{e.LinkID, e.OccurredAt}
	}

	if _, err := r.db.CopyFrom(ctx, pgx.Identifier{"clicks"}, clickColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("failed to record %d clicks: %w", len(events), err)
	}
	return nil
}

func (r *LinkRepository) CountClicks(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countClicksSQL, linkID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

func (r *LinkRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
