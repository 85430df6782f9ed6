// Command activitiesd runs the Mergington High School activity signup
// service: a JSON API over the activity registry plus the static signup
// front-end.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	redisstore "github.com/mergington-hs/activities/adapters/redis"
	sqsevents "github.com/mergington-hs/activities/adapters/sqs"
	"github.com/mergington-hs/activities/config"
	"github.com/mergington-hs/activities/events"
	"github.com/mergington-hs/activities/logger"
	"github.com/mergington-hs/activities/registry"
	"github.com/mergington-hs/activities/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := buildStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("failed to initialize store", zap.Error(err))
	}
	defer cleanup()

	publisher, feed, err := buildPublisher(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("failed to initialize event publisher", zap.Error(err))
	}
	if publisher != nil {
		defer publisher.Close()
	}

	srv, err := server.New(server.Config{
		Store:     store,
		Events:    publisher,
		Feed:      feed,
		Logger:    logg,
		Port:      cfg.Server.Port,
		StaticDir: cfg.Server.StaticDir,
	})
	if err != nil {
		logg.Fatal("failed to create server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	logg.Info("activity service started",
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Backend),
		zap.String("events", cfg.Events.Publisher),
	)

	select {
	case <-ctx.Done():
		logg.Info("shutdown signal received")
	case err := <-errCh:
		logg.Error("server stopped unexpectedly", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	logg.Info("activity service stopped")
}

// buildStore creates the configured registry backend seeded with the
// school's activity catalog.
func buildStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (registry.Store, func(), error) {
	switch cfg.Store.Backend {
	case "redis":
		rs, err := redisstore.New(redisstore.Config{
			Addr:     cfg.Store.Redis.Address,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Prefix:   cfg.Store.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := rs.Seed(ctx, registry.DefaultActivities()); err != nil {
			rs.Close()
			return nil, nil, err
		}
		logg.Info("using redis store", zap.String("address", cfg.Store.Redis.Address))
		return rs, func() { rs.Close() }, nil
	default:
		return registry.NewInMemoryStore(registry.DefaultActivities()), func() {}, nil
	}
}

// buildPublisher creates the configured roster-event publisher. The second
// return value is the local feed used for SSE; only the in-memory publisher
// supports subscriptions.
func buildPublisher(ctx context.Context, cfg *config.Config, logg *zap.Logger) (events.Publisher, events.Subscriber, error) {
	switch cfg.Events.Publisher {
	case "memory":
		pub := events.NewInMemoryPublisher()
		ch, cancelSub := pub.Subscribe()
		consumer := events.NewConsumer(logg)
		go func() {
			defer cancelSub()
			consumer.Run(ctx, ch)
		}()
		return pub, pub, nil
	case "sqs":
		pub, err := sqsevents.New(ctx, sqsevents.Config{
			QueueURL: cfg.Events.SQS.QueueURL,
			Region:   cfg.Events.SQS.Region,
			FIFO:     cfg.Events.SQS.FIFO,
		})
		if err != nil {
			return nil, nil, err
		}
		logg.Info("publishing roster events to SQS", zap.String("queue", cfg.Events.SQS.QueueURL))
		return pub, nil, nil
	default:
		return nil, nil, nil
	}
}
