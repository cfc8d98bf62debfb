package clicklog

//go:generate go tool mockery

import (
	"context"
	"log/slog"
	"time"

	"linkshortener/internal/batch"
	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

type Store interface {
	RecordClicks(ctx context.Context, events []domain.ClickEvent) error
}

// Log records click events in the background. A full buffer or a failed
// write loses clicks; it never reaches the resolve path.
type Log struct {
	writer *batch.Writer[domain.ClickEvent]
}

func New(cfg *config.ClicksConfig, store Store, logger *slog.Logger, onDrop func()) *Log {
	w := batch.New(batch.Config{
		Name:           "clicks",
		BufferSize:     cfg.BufferSize,
		Workers:        cfg.Workers,
		FlushThreshold: cfg.FlushThreshold,
		FlushInterval:  cfg.FlushInterval,
		OnDrop:         onDrop,
	}, store.RecordClicks, logger)
	return &Log{writer: w}
}

func (l *Log) RecordClick(linkID int64, at time.Time) {
	l.writer.Add(domain.ClickEvent{LinkID: linkID, OccurredAt: at})
}

func (l *Log) Start(ctx context.Context) {
	l.writer.Start(ctx)
}

// Close stops the workers after flushing buffered clicks.
func (l *Log) Close() {
	l.writer.Close()
}

func (l *Log) Pending() int {
	return l.writer.Len()
}

func (l *Log) Dropped() uint64 {
	return l.writer.Dropped()
}
