package metrics

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"linkshortener/internal/batch"
	"linkshortener/internal/config"
)

var (
	httpColumns = []string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"}

	infraColumns = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "click_queue", "goroutines", "heap_alloc_mb",
	}
)

type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Recorder stores request and runtime samples in Postgres. All Record calls
// are no-ops when metrics are disabled.
type Recorder struct {
	db      Copier
	logger  *slog.Logger
	enabled bool
	http    *batch.Writer[HTTPMetric]
	infra   *batch.Writer[InfraMetric]
}

func NewRecorder(db Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		db:      db,
		logger:  logger,
		enabled: cfg.Enabled,
	}

	writerCfg := func(name string) batch.Config {
		return batch.Config{
			Name:           name,
			BufferSize:     cfg.BufferSize,
			Workers:        1,
			FlushThreshold: cfg.FlushThreshold,
			FlushInterval:  cfg.FlushInterval,
		}
	}
	r.http = batch.New(writerCfg("http_metrics"), r.writeHTTPBatch, logger)
	r.infra = batch.New(writerCfg("infra_metrics"), r.writeInfraBatch, logger)

	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled {
		return
	}
	r.http.Add(m)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled {
		return
	}
	r.infra.Add(m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}
	r.http.Start(ctx)
	r.infra.Start(ctx)
}

func (r *Recorder) Close() {
	r.http.Close()
	r.infra.Close()
}

func (r *Recorder) writeHTTPBatch(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := r.db.CopyFrom(ctx, pgx.Identifier{"http_metrics"}, httpColumns, pgx.CopyFromRows(rows))
	return err
}

func (r *Recorder) writeInfraBatch(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.ClickQueue, m.Goroutines, m.HeapAllocMB,
		}
	}

	_, err := r.db.CopyFrom(ctx, pgx.Identifier{"infra_metrics"}, infraColumns, pgx.CopyFromRows(rows))
	return err
}
