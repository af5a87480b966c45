package runtime

import (
	"context"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Room_One_Watcher(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	watcherID := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// Given no watcher is connected
	req.Nil(registry.GetSinksForRoom(roomID))

	// When a watcher subscribes a room
	registry.Subscribe(watcherID, roomID, sink)

	// Then
	req.Len(registry.GetSinksForRoom(roomID), 1)
	req.Contains(registry.GetSinksForRoom(roomID), sink)
}

func TestRegistry_Subscribe_One_Room_Multiple_Watchers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	watcherID1 := uuid.NewString()
	watcherID2 := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// When watchers subscribe a room
	registry.Subscribe(watcherID1, roomID, sink)
	registry.Subscribe(watcherID2, roomID, sink)

	// Then
	req.Len(registry.GetSinksForRoom(roomID), 2)
}

func TestRegistry_Subscribe_Does_Not_Leak_Across_Rooms(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	watcherID := uuid.NewString()
	sink := Sink{}

	registry.Subscribe(watcherID, domain.RoomID("room-1"), sink)

	req.Nil(registry.GetSinksForRoom(domain.RoomID("room-2")))
}

func TestRegistry_UnSubscribe_One_Room_One_Watcher(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	watcherID := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// Given a watcher subscribes a room
	registry.Subscribe(watcherID, roomID, sink)

	// When the watcher unsubscribes
	registry.Unsubscribe(watcherID, roomID)

	// Then no watcher connected left in room
	req.Nil(registry.GetSinksForRoom(roomID))
}

func TestRegistry_UnSubscribe_One_Room_Multiple_Watchers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	watcherID1 := uuid.NewString()
	watcherID2 := uuid.NewString()
	roomID := domain.RoomID("room-1")
	sink := Sink{}

	// When watchers subscribe a room
	registry.Subscribe(watcherID1, roomID, sink)
	registry.Subscribe(watcherID2, roomID, sink)

	// When one watcher unsubscribes
	registry.Unsubscribe(watcherID1, roomID)

	// Then only one watcher left
	req.Len(registry.GetSinksForRoom(roomID), 1)
}
