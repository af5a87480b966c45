package projection

import (
	"context"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScoreboard_TracksRoomLifecycle(t *testing.T) {
	req := require.New(t)
	board := NewScoreboard()
	ctx := context.Background()
	room := domain.RoomID("room-1")
	now := time.Now().UTC()

	req.NoError(board.Consume(ctx, event.CountAccepted{Room: room, Contributor: "alice", Value: 1, At: now}))
	req.NoError(board.Consume(ctx, event.CountAccepted{Room: room, Contributor: "bob", Value: 2, At: now}))

	activity, ok := board.Activity(room)
	req.True(ok)
	req.EqualValues(2, activity.Current)
	req.Equal("bob", activity.LastContributor)
	req.False(activity.Recovering)

	req.NoError(board.Consume(ctx, event.GraceOpened{Room: room, Window: uuid.New(), Expected: 3, Excluded: "carol", At: now}))
	activity, _ = board.Activity(room)
	req.True(activity.Recovering)

	req.NoError(board.Consume(ctx, event.GraceSaved{Room: room, Contributor: "dave", Value: 3, At: now}))
	activity, _ = board.Activity(room)
	req.False(activity.Recovering)
	req.EqualValues(3, activity.Current)
	req.Equal("dave", activity.LastContributor)
	req.EqualValues(1, activity.Saves)
}

func TestScoreboard_ExpiryZeroesTheRoom(t *testing.T) {
	req := require.New(t)
	board := NewScoreboard()
	ctx := context.Background()
	room := domain.RoomID("room-1")
	now := time.Now().UTC()

	req.NoError(board.Consume(ctx, event.CountAccepted{Room: room, Contributor: "alice", Value: 1, At: now}))
	req.NoError(board.Consume(ctx, event.GraceOpened{Room: room, Window: uuid.New(), Expected: 2, Excluded: "bob", At: now}))
	req.NoError(board.Consume(ctx, event.GraceExpired{Room: room, Expected: 2, At: now}))

	activity, ok := board.Activity(room)
	req.True(ok)
	req.EqualValues(0, activity.Current)
	req.Empty(activity.LastContributor)
	req.False(activity.Recovering)
	req.EqualValues(1, activity.Losses)
}

func TestScoreboard_RoomsAreIsolated(t *testing.T) {
	req := require.New(t)
	board := NewScoreboard()
	ctx := context.Background()
	now := time.Now().UTC()

	req.NoError(board.Consume(ctx, event.CountAccepted{Room: "room-a", Contributor: "alice", Value: 5, At: now}))
	req.NoError(board.Consume(ctx, event.RoomReset{Room: "room-b", At: now}))

	rooms := board.Rooms()
	req.Len(rooms, 2)
	req.EqualValues(5, rooms["room-a"].Current)
	req.EqualValues(0, rooms["room-b"].Current)

	_, ok := board.Activity("room-c")
	req.False(ok)
}
