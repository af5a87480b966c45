package main

import (
	"context"
	"counting-lab/domain"
	"counting-lab/notify"
	"counting-lab/observability"
	"counting-lab/projection"
	"counting-lab/repositories"
	"counting-lab/runtime"
	"counting-lab/runtime/workers"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
)

const room = domain.RoomID("demo")

// The tester drives a full in-process engine through one scripted game:
// a clean run, a rejected double post, a mistake saved inside the grace
// window, then a mistake left to expire. Countdown rendering goes to the
// terminal, ticks run fast so the expiry is watchable.
func main() {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString("warn")
	repository := repositories.NewCountRepository(db, logger)
	stats := observability.NewEngineStats()
	sup := workers.NewSupervisor(logger, 50*time.Millisecond)
	registry := runtime.NewRegistry()
	notifier := notify.NewConsoleNotifier()

	orchestrator := runtime.NewOrchestrator(logger, sup, registry, repository, notifier, stats, runtime.Options{
		BufferSize:        16,
		GraceTicks:        5,
		GraceTickInterval: 300 * time.Millisecond,
		SinkTimeout:       time.Second,
		HeartbeatInterval: time.Minute,
	})
	scoreboard := projection.NewScoreboard()
	orchestrator.Add(scoreboard)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := orchestrator.Start(ctx); err != nil {
		log.Fatalf("Failed to start orchestrator: %v", err)
	}
	defer orchestrator.Stop()

	color.Cyan.Println("--- Clean run ---")
	post(ctx, orchestrator, "alice", "1")
	post(ctx, orchestrator, "bob", "2")
	post(ctx, orchestrator, "alice", "**3**")

	color.Cyan.Println("--- Double post (same contributor twice) ---")
	post(ctx, orchestrator, "alice", "4")

	color.Cyan.Println("--- Mistake saved during the grace window ---")
	post(ctx, orchestrator, "bob", "7")
	time.Sleep(700 * time.Millisecond)
	post(ctx, orchestrator, "carol", "4")

	color.Cyan.Println("--- Mistake left to expire ---")
	post(ctx, orchestrator, "alice", "9")
	time.Sleep(2 * time.Second)

	post(ctx, orchestrator, "bob", "1")

	time.Sleep(200 * time.Millisecond)
	if activity, ok := scoreboard.Activity(room); ok {
		color.Cyan.Printf("--- Scoreboard: current=%d saves=%d losses=%d last=%s ---\n",
			activity.Current, activity.Saves, activity.Losses, activity.LastContributor)
	}
}

func post(ctx context.Context, orchestrator *runtime.Orchestrator, author, content string) {
	msg := domain.Message{
		ID:        uuid.New(),
		Room:      room,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	outcome, err := orchestrator.Submit(ctx, msg)
	if err != nil {
		log.Fatalf("Submit failed: %v", err)
	}
	fmt.Printf("%-6s posts %-8q -> %s\n", author, content, outcome.String())
}
