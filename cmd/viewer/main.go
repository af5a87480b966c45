package main

import (
	"context"
	"counting-lab/domain"
	"counting-lab/internal"
	"counting-lab/repositories"
	"fmt"
	"log"
	"os"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// The viewer renders leaderboards from the Badger store without running the
// engine. It opens the database read-only so it can run next to a live
// process holding the lock.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in read-only mode
	// Note: BypassLockGuard allows opening while the engine holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewCountRepository(db, logs.GetLoggerFromString("warn"))
	ctx := context.Background()

	rankings, err := repository.GetGlobalRankings(ctx)
	if err != nil {
		log.Fatalf("Failed to read rankings: %v", err)
	}
	total, err := repository.GetTotalAcrossRooms(ctx)
	if err != nil {
		log.Fatalf("Failed to read totals: %v", err)
	}

	color.Cyan.Printf("Total accepted across all rooms: %d\n\n", total)

	renderBoard("CURRENT COUNT", rankings.CurrentCount)
	renderBoard("HIGH WATER", rankings.HighWater)
	renderBoard("TOTAL ACCEPTED", rankings.TotalAccepted)

	// One contributor board per ranked room, highest current count first
	for _, entry := range rankings.CurrentCount {
		renderContributors(ctx, repository, entry.Room)
	}
}

func renderBoard(title string, entries []domain.RankingEntry) {
	color.Yellow.Println(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Room", "Value"})
	for i, entry := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(entry.Room),
			fmt.Sprintf("%d", entry.Value),
		})
	}
	table.Render()
	fmt.Println()
}

func renderContributors(ctx context.Context, repository *repositories.CountRepository, room domain.RoomID) {
	scores, err := repository.GetTopContributors(ctx, room, 10)
	if err != nil {
		log.Printf("Failed to read contributors for %s: %v", room, err)
		return
	}
	if len(scores) == 0 {
		return
	}

	color.Green.Printf("TOP CONTRIBUTORS (%s)\n", room)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Contributor", "Accepted"})
	for _, score := range scores {
		table.Append([]string{score.Contributor, fmt.Sprintf("%d", score.Accepted)})
	}
	table.Render()
	fmt.Println()
}
