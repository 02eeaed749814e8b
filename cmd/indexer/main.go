package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/riolytics/matchsearch/internal/archive"
	"github.com/riolytics/matchsearch/internal/indexer"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/internal/matchcache"
	"github.com/riolytics/matchsearch/pkg/config"
	"github.com/riolytics/matchsearch/pkg/kafka"
	"github.com/riolytics/matchsearch/pkg/logger"
	"github.com/riolytics/matchsearch/pkg/metrics"
	"github.com/riolytics/matchsearch/pkg/postgres"
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
	slog.Info("starting match indexer", "topic", cfg.Kafka.Topics.MatchIngest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	if cfg.Metrics.Enabled {
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer shutdownMetrics(context.Background())
	}

	db, err := postgres.New(cfg.Postgres)
	if err != nil {
		slog.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := archive.NewStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("archive schema setup failed", "error", err)
		os.Exit(1)
	}

	var summaryCache *matchcache.Cache
	redisClient, err := pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, summary caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		summaryCache = matchcache.New(redisClient, cfg.Redis.SummaryTTL, m)
	}

	producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.BuildComplete)
	defer producer.Close()

	worker := indexer.NewWorker(store, summaryCache, producer, lookup.DefaultDomain(), m)

	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.MatchIngest, worker.HandleMessage)
	defer consumer.Close()

	slog.Info("match indexer consuming", "brokers", cfg.Kafka.Brokers)
	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		slog.Error("consumer error", "error", err)
		os.Exit(1)
	}

	slog.Info("match indexer stopped")
}
