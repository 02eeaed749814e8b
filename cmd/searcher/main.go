package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riolytics/matchsearch/internal/export"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/internal/matchcache"
	"github.com/riolytics/matchsearch/internal/search"
	"github.com/riolytics/matchsearch/internal/searcher/handler"
	"github.com/riolytics/matchsearch/pkg/config"
	"github.com/riolytics/matchsearch/pkg/health"
	"github.com/riolytics/matchsearch/pkg/logger"
	"github.com/riolytics/matchsearch/pkg/metrics"
	"github.com/riolytics/matchsearch/pkg/middleware"
	pkgredis "github.com/riolytics/matchsearch/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting match search service", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	if cfg.Metrics.Enabled {
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer shutdownMetrics(context.Background())
	}

	var summaryCache *matchcache.Cache
	redisClient, err := pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, summary caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		summaryCache = matchcache.New(redisClient, cfg.Redis.SummaryTTL, m)
		slog.Info("summary cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SummaryTTL)
	}

	domain := lookup.DefaultDomain()
	registry := handler.NewRegistry(cfg.Searcher.MaxLoadedMatches)

	// Preload any decoded match files already on disk.
	if cfg.Searcher.MatchDir != "" {
		records, err := export.LoadDirectory(cfg.Searcher.MatchDir, slog.Default())
		if err != nil {
			slog.Warn("match directory not readable, starting empty",
				"dir", cfg.Searcher.MatchDir, "error", err)
		} else if len(records) > 0 {
			engines, err := search.BuildAll(ctx, records, domain, slog.Default(), m, cfg.Searcher.BuildConcurrency)
			if err != nil {
				slog.Error("preloading matches failed", "error", err)
				os.Exit(1)
			}
			for gameID, eng := range engines {
				if err := registry.Put(gameID, eng); err != nil {
					slog.Warn("skipping duplicate preloaded match", "game_id", gameID, "error", err)
				}
			}
			m.LoadedMatches.Set(float64(registry.Len()))
			slog.Info("preloaded matches", "count", registry.Len(), "dir", cfg.Searcher.MatchDir)
		}
	}

	checker := health.NewChecker()
	checker.Register("registry", func(ctx context.Context) health.ComponentHealth {
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d matches loaded", registry.Len()),
		}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	h := handler.New(registry, domain, summaryCache, m)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	chain = middleware.Metrics(m)(chain)
	chain = middleware.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = middleware.RequestID(chain)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("match search service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("match search service stopped")
}
