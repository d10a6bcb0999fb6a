package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/apostaguard/platform/internal/infra"
	"github.com/joho/godotenv"
)

// event-logger consumes the domain-event topic and writes each event to
// structured logs. It is the audit tail for wager admissions, limit
// changes and self-exclusion locks.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("event-logger failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	consumer := infra.NewEventConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
	defer consumer.Close()

	logger.Info("event-logger starting",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaTopic,
		"group_id", cfg.KafkaGroupID,
	)

	for {
		event, err := consumer.ReadEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("event-logger shutting down")
				return nil
			}
			logger.Error("read event", "error", err)
			continue
		}

		logger.Info("domain event",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"owner_id", event.OwnerID,
			"occurred_at", event.OccurredAt,
			"payload", string(event.Payload),
		)
	}
}
