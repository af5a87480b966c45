package main

import (
	"bufio"
	"context"
	"counting-lab/contract"
	"counting-lab/domain"
	errs "counting-lab/errors"
	"counting-lab/internal"
	"counting-lab/notify"
	"counting-lab/observability"
	"counting-lab/projection"
	"counting-lab/repositories"
	"counting-lab/runtime"
	"counting-lab/runtime/workers"
	"counting-lab/services"
	"counting-lab/sink"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the engine lifecycle, and centralizes
// error reporting, so every defer (database close included) executes before the
// process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Count store (Badger by default, Redis as alternative)
	repository, closeStore, err := openStore(config, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 3. Supervision & orchestration
	stats := observability.NewEngineStats()
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	notifier := notify.NewLogNotifier(log)

	orchestrator := runtime.NewOrchestrator(log, sup, registry, repository, notifier, stats, runtime.Options{
		BufferSize:        config.BufferSize,
		GraceTicks:        config.GraceTicks,
		GraceTickInterval: config.GraceTickInterval,
		SinkTimeout:       config.SinkTimeout,
		HeartbeatInterval: config.HeartbeatInterval,
	})

	scoreboard := projection.NewScoreboard()
	orchestrator.Add(scoreboard, sink.NewLogSink(log))

	service := services.NewCountingService(orchestrator, repository, log)

	// 4. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	internal.StartDebugServer(config.DebugPort, repository, stats, log)

	// 6. Stdin gateway: one contribution per line
	go readContributions(ctx, service, log)

	// 7. Wait for stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	// 8. Final cleanup
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

// openStore selects the configured backend and returns the repository with
// its cleanup function.
func openStore(config internal.Config, log *slog.Logger) (contract.ICountRepository, func(), error) {
	switch config.StoreBackend {
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.INFO))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		cleanup := func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}
		return repositories.NewCountRepository(db, log), cleanup, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		cleanup := func() {
			log.Info("Closing Redis client...")
			_ = rdb.Close()
		}
		return repositories.NewRedisCountRepository(rdb, log), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", errs.ErrUnknownBackend, config.StoreBackend)
	}
}

// readContributions feeds stdin lines into the service until the context
// ends. Contribution format: author room channel text...
// A room accepts contributions once its counting channel is mapped:
//
//	/map room channel
func readContributions(ctx context.Context, service services.ICountingService, log *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 4)
		if fields[0] == "/map" && len(fields) >= 3 {
			if err := service.SetCountingRoom(ctx, domain.RoomID(fields[1]), fields[2]); err != nil {
				log.Error("Failed to map counting room", "room", fields[1], "error", err)
			}
			continue
		}
		if len(fields) < 4 {
			log.Warn("Malformed line, expected: author room channel text", "line", line)
			continue
		}

		msg := domain.Message{
			ID:        uuid.New(),
			Room:      domain.RoomID(fields[1]),
			Channel:   fields[2],
			Author:    fields[0],
			Content:   fields[3],
			CreatedAt: time.Now().UTC(),
		}
		outcome, err := service.HandleMessage(ctx, msg)
		if err != nil {
			log.Error("Failed to handle contribution", "error", err)
			continue
		}
		log.Info("Contribution handled", "author", fields[0], "room", fields[1], "outcome", outcome.String())
	}
}
