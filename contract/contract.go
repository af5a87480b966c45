//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ICountRepository is the Room Count Store contract. Every per-room
// operation is atomic with respect to concurrent callers for that room;
// failures are returned, never swallowed.
type ICountRepository interface {
	GetCurrentCount(ctx context.Context, room domain.RoomID) (int64, error)
	GetLastContributor(ctx context.Context, room domain.RoomID) (string, bool, error)
	// Increment advances the count by one, records the contributor and
	// bumps the monotonic statistics. Returns the new count.
	Increment(ctx context.Context, room domain.RoomID, contributor string) (int64, error)
	// Reset zeroes the count and clears the room's contributor history.
	// High-water mark and total stay untouched.
	Reset(ctx context.Context, room domain.RoomID) error
	GetRoomStats(ctx context.Context, room domain.RoomID) (domain.RoomStats, error)
	GetGlobalRankings(ctx context.Context) (domain.Rankings, error)
	GetTotalAcrossRooms(ctx context.Context) (int64, error)
	GetTopContributors(ctx context.Context, room domain.RoomID, limit int) ([]domain.ContributorScore, error)
	SetCountingRoom(ctx context.Context, room domain.RoomID, channel string) error
	GetCountingRoom(ctx context.Context, room domain.RoomID) (string, bool, error)
	RemoveRoom(ctx context.Context, room domain.RoomID) error
}

// INotifier renders countdown, success and failure feedback. Calls are
// fire-and-forget: delivery failures are the collaborator's to log and
// never reach engine state.
type INotifier interface {
	RenderCountdown(ctx context.Context, room domain.RoomID, secondsRemaining int, expected int64)
	RenderSaved(ctx context.Context, room domain.RoomID, contributor string, expected int64)
	RenderFailed(ctx context.Context, room domain.RoomID, expected int64)
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	GetSinksForRoom(roomID domain.RoomID) []EventSink
	Subscribe(watcherID string, roomID domain.RoomID, sink EventSink)
	Unsubscribe(watcherID string, roomID domain.RoomID)
}
