package batch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const defaultFlushTimeout = 5 * time.Second

// FlushFunc persists one batch. Errors are logged by the Writer and the
// batch is discarded. The slice is reused once FlushFunc returns.
type FlushFunc[T any] func(ctx context.Context, batch []T) error

type Config struct {
	Name           string
	BufferSize     int
	Workers        int
	FlushThreshold int
	FlushInterval  time.Duration
	FlushTimeout   time.Duration
	// OnDrop is called for every item rejected because the buffer is full
	// or the writer is closed.
	OnDrop func()
}

// Writer is a bounded, fire-and-forget queue drained by background workers.
// Add never blocks. Flushes run on their own context, detached from whoever
// called Add.
type Writer[T any] struct {
	cfg          Config
	flush        FlushFunc[T]
	logger       *slog.Logger
	ch           chan T
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
	// mu makes the closed check and the send in Add atomic with respect to Close.
	mu           sync.RWMutex
	closed       bool
	dropped      atomic.Uint64
}

func New[T any](cfg Config, flush FlushFunc[T], logger *slog.Logger) *Writer[T] {
	cfg.BufferSize = max(1, cfg.BufferSize)
	cfg.Workers = max(1, cfg.Workers)
	cfg.FlushThreshold = max(1, cfg.FlushThreshold)
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = defaultFlushTimeout
	}

	return &Writer[T]{
		cfg:        cfg,
		flush:      flush,
		logger:     logger.With(slog.String("writer", cfg.Name)),
		ch:         make(chan T, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

// Add enqueues item and reports whether it was accepted.
func (w *Writer[T]) Add(item T) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.drop()
		return false
	}
	select {
	case w.ch <- item:
		return true
	default:
		w.logger.Warn("buffer full, dropping item")
		w.drop()
		return false
	}
}

func (w *Writer[T]) drop() {
	w.dropped.Add(1)
	if w.cfg.OnDrop != nil {
		w.cfg.OnDrop()
	}
}

// Start launches the workers. They stop when ctx is done or Close is called,
// flushing whatever is still buffered.
func (w *Writer[T]) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.wg.Add(w.cfg.Workers)
		for range w.cfg.Workers {
			go w.run(ctx)
		}
		w.logger.Info("batch writer started",
			slog.Int("workers", w.cfg.Workers),
			slog.Int("buffer_size", w.cfg.BufferSize),
			slog.Duration("flush_interval", w.cfg.FlushInterval))
	})
}

// Close rejects further items, stops the workers and flushes everything still
// buffered, including items accepted after the workers exited on ctx.
func (w *Writer[T]) Close() {
	w.shutdownOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		close(w.shutdownCh)
		w.wg.Wait()
		w.drainAndFlush(nil)
	})
}

// Len is the number of buffered items not yet picked up by a worker.
func (w *Writer[T]) Len() int {
	return len(w.ch)
}

func (w *Writer[T]) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *Writer[T]) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]T, 0, w.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			w.drainAndFlush(batch)
			return
		case <-w.shutdownCh:
			w.drainAndFlush(batch)
			return
		case item := <-w.ch:
			batch = append(batch, item)
			if len(batch) >= w.cfg.FlushThreshold {
				w.write(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.write(batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *Writer[T]) drainAndFlush(batch []T) {
	for {
		select {
		case item := <-w.ch:
			batch = append(batch, item)
			if len(batch) >= w.cfg.FlushThreshold {
				w.write(batch)
				batch = batch[:0]
			}
		default:
			w.write(batch)
			return
		}
	}
}

func (w *Writer[T]) write(batch []T) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.FlushTimeout)
	defer cancel()

	if err := w.flush(ctx, batch); err != nil {
		w.logger.Error("failed to write batch",
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
