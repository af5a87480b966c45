package runtime

import (
	"context"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"counting-lab/notify"
	"counting-lab/observability"
	"counting-lab/repositories"
	"counting-lab/runtime/workers"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type channelSink struct {
	received chan event.DomainEvent
}

func (s *channelSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.received <- e
	return nil
}

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	orchestrator := NewOrchestrator(
		log,
		workers.NewSupervisor(log, 50*time.Millisecond),
		NewRegistry(),
		repositories.NewCountRepository(db, log),
		notify.NewLogNotifier(log),
		observability.NewEngineStats(),
		Options{
			BufferSize:        16,
			GraceTicks:        3,
			GraceTickInterval: 30 * time.Millisecond,
			SinkTimeout:       time.Second,
			HeartbeatInterval: time.Minute,
		},
	)
	return orchestrator
}

func submit(t *testing.T, o *Orchestrator, room domain.RoomID, author, content string) domain.Outcome {
	t.Helper()
	outcome, err := o.Submit(context.Background(), domain.Message{
		ID:        uuid.New(),
		Room:      room,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return outcome
}

func TestOrchestrator_RoomsCountIndependently(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator(t)
	req.NoError(orchestrator.Start(context.Background()))
	defer orchestrator.Stop()

	roomA := domain.RoomID("room-a")
	roomB := domain.RoomID("room-b")

	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, roomA, "alice", "1"))
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, roomA, "bob", "2"))

	// Room B starts from scratch, whatever room A reached.
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, roomB, "alice", "1"))
	// And a mistake in room B leaves room A untouched.
	req.Equal(domain.OutcomeRecovering, submit(t, orchestrator, roomB, "bob", "9"))

	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, roomA, "carol", "3"))
}

func TestOrchestrator_ResetRoom(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator(t)
	req.NoError(orchestrator.Start(context.Background()))
	defer orchestrator.Stop()

	room := domain.RoomID("room-a")
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, room, "alice", "1"))
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, room, "bob", "2"))

	req.NoError(orchestrator.ResetRoom(context.Background(), room))

	// History is cleared too, the last contributor may count again.
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, room, "bob", "1"))
}

func TestOrchestrator_WatcherReceivesRoomEvents(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator(t)
	req.NoError(orchestrator.Start(context.Background()))
	defer orchestrator.Stop()

	room := domain.RoomID("room-a")
	sink := &channelSink{received: make(chan event.DomainEvent, 8)}
	orchestrator.RegisterWatcher("watcher-1", room, sink)

	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, room, "alice", "1"))

	select {
	case e := <-sink.received:
		accepted, ok := e.(event.CountAccepted)
		req.True(ok)
		req.Equal("alice", accepted.Contributor)
		req.EqualValues(1, accepted.Value)
	case <-time.After(time.Second):
		req.Fail("Watcher did not receive the event")
	}

	orchestrator.UnregisterWatcher("watcher-1", room)
	req.Equal(domain.OutcomeAccepted, submit(t, orchestrator, room, "bob", "2"))

	select {
	case <-sink.received:
		req.Fail("Unregistered watcher should not receive events")
	case <-time.After(150 * time.Millisecond):
	}
}
