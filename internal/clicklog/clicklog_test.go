package clicklog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/clicklog"
	"linkshortener/internal/clicklog/mocks"
	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

func testConfig() *config.ClicksConfig {
	return &config.ClicksConfig{
		BufferSize:     10,
		Workers:        1,
		FlushThreshold: 100,
		FlushInterval:  time.Hour,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordClick_WrittenOnClose(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	store := mocks.NewMockStore(t)
	store.EXPECT().RecordClicks(mock.Anything, []domain.ClickEvent{
		{LinkID: 7, OccurredAt: at},
		{LinkID: 8, OccurredAt: at},
	}).Return(nil).Once()

	l := clicklog.New(testConfig(), store, discardLogger(), nil)
	l.Start(context.Background())

	l.RecordClick(7, at)
	l.RecordClick(8, at)
	l.Close()
}

func TestRecordClick_FlushesAfterContextCancel(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().RecordClicks(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []domain.ClickEvent) error {
			return ctx.Err()
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	l := clicklog.New(testConfig(), store, discardLogger(), nil)
	l.Start(ctx)

	l.RecordClick(1, time.Now())
	cancel()
	l.Close()
}

func TestRecordClick_StoreFailureIsSwallowed(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().RecordClicks(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	l := clicklog.New(testConfig(), store, discardLogger(), nil)
	l.Start(context.Background())

	assert.NotPanics(t, func() { l.RecordClick(1, time.Now()) })
	l.Close()
}

func TestRecordClick_DropsWhenFull(t *testing.T) {
	drops := 0
	cfg := testConfig()
	cfg.BufferSize = 1

	store := mocks.NewMockStore(t)
	store.EXPECT().RecordClicks(mock.Anything, mock.Anything).Return(nil).Maybe()

	l := clicklog.New(cfg, store, discardLogger(), func() { drops++ })

	l.RecordClick(1, time.Now())
	l.RecordClick(2, time.Now())

	require.Equal(t, 1, l.Pending())
	assert.Equal(t, uint64(1), l.Dropped())
	assert.Equal(t, 1, drops)
	l.Close()
}
