package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"linkshortener/internal/cache"
	"linkshortener/internal/clicklog"
	"linkshortener/internal/config"
	"linkshortener/internal/handler"
	"linkshortener/internal/metrics"
	custommiddleware "linkshortener/internal/middleware"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
	"linkshortener/internal/shortener"
	"linkshortener/internal/validation"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	pool, err := repository.Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewLinkRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	gen, err := shortener.New(cfg.App.CodeLength)
	if err != nil {
		return fmt.Errorf("failed to create code generator: %w", err)
	}

	var (
		linkCache  service.Cache = cache.Noop{}
		cacheStats func() (uint64, uint64, float64)
	)
	if cfg.Cache.Enabled {
		lc, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer lc.Close()
		linkCache, cacheStats = lc, lc.Stats
	}

	// Background writers outlive the signal context; Close drains them once
	// the server has stopped taking requests.
	bgCtx := context.WithoutCancel(ctx)

	counters := metrics.NewCounters()

	clicks := clicklog.New(&cfg.Clicks, repo, logger, counters.ClickDropped)
	clicks.Start(bgCtx)
	defer clicks.Close()
	counters.WatchClickQueue(clicks.Pending)

	recorder := metrics.NewRecorder(pool, &cfg.Metrics, logger)
	recorder.Start(bgCtx)
	defer recorder.Close()

	if cfg.Metrics.Enabled {
		go collectInfraMetrics(ctx, cfg.Metrics.InfraInterval, recorder, pool, cacheStats, clicks)
	}

	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength, cfg.Validation.AllowPrivateIPs)
	links := service.NewLinkService(repo, gen, urlValidator, linkCache, clicks, counters, cfg.App.BaseURL)
	h := handler.New(links, repo, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(middleware.CORS())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Metrics(recorder, "/metrics", "/health"))

	e.GET("/metrics", echo.WrapHandler(counters.Handler()))
	if cfg.Debug.PprofEnabled {
		custommiddleware.RegisterPprof(e.Group("/debug/pprof"))
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}
	h.Register(e)

	return listenAndServe(ctx, &cfg.Server, e, logger)
}

func listenAndServe(ctx context.Context, cfg *config.ServerConfig, h http.Handler, logger *slog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.MaxConnections)
	}

	srv := &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.MaxConnections))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func collectInfraMetrics(
	ctx context.Context,
	interval time.Duration,
	recorder *metrics.Recorder,
	pool *pgxpool.Pool,
	cacheStats func() (uint64, uint64, float64),
	clicks *clicklog.Log,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := pool.Stat()

			var hits, misses uint64
			var ratio float64
			if cacheStats != nil {
				hits, misses, ratio = cacheStats()
			}

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  int(poolStat.AcquiredConns()),
				PoolIdle:      int(poolStat.IdleConns()),
				PoolTotal:     int(poolStat.TotalConns()),
				PoolMax:       int(poolStat.MaxConns()),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
				ClickQueue:    clicks.Pending(),
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
