package repositories

import (
	"context"
	"counting-lab/domain"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *CountRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCountRepository(db, slog.Default())
}

func Test_Increment_Advances_By_One(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")

	current, err := repository.GetCurrentCount(ctx, room)
	req.NoError(err)
	req.Equal(int64(0), current)

	contributors := []string{"alice", "bob", "alice"}
	for i, contributor := range contributors {
		current, err = repository.Increment(ctx, room, contributor)
		req.NoError(err)
		req.Equal(int64(i+1), current)
	}

	last, found, err := repository.GetLastContributor(ctx, room)
	req.NoError(err)
	req.True(found)
	req.Equal("alice", last)
}

func Test_Reset_Keeps_Monotonic_Statistics(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")

	for _, contributor := range []string{"alice", "bob", "clara"} {
		_, err := repository.Increment(ctx, room, contributor)
		req.NoError(err)
	}

	req.NoError(repository.Reset(ctx, room))

	stats, err := repository.GetRoomStats(ctx, room)
	req.NoError(err)
	req.Equal(int64(0), stats.Current)
	req.Equal(int64(3), stats.HighWater)
	req.Equal(int64(3), stats.TotalAccepted)

	_, found, err := repository.GetLastContributor(ctx, room)
	req.NoError(err)
	req.False(found)

	// Contributor history is cleared with the count.
	scores, err := repository.GetTopContributors(ctx, room, 10)
	req.NoError(err)
	req.Empty(scores)
}

func Test_HighWater_Survives_Lower_Run(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")

	for _, contributor := range []string{"alice", "bob", "clara", "alice", "bob"} {
		_, err := repository.Increment(ctx, room, contributor)
		req.NoError(err)
	}
	req.NoError(repository.Reset(ctx, room))
	_, err := repository.Increment(ctx, room, "alice")
	req.NoError(err)

	stats, err := repository.GetRoomStats(ctx, room)
	req.NoError(err)
	req.Equal(int64(1), stats.Current)
	req.Equal(int64(5), stats.HighWater)
	req.Equal(int64(6), stats.TotalAccepted)
}

func Test_Global_Rankings_Are_Descending(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)

	increments := map[domain.RoomID]int{"small": 2, "big": 7, "medium": 4}
	for room, n := range increments {
		contributor := "alice"
		for i := 0; i < n; i++ {
			// Alternate contributors, the store doesn't enforce game rules.
			if i%2 == 1 {
				contributor = "bob"
			} else {
				contributor = "alice"
			}
			_, err := repository.Increment(ctx, room, contributor)
			req.NoError(err)
		}
	}

	rankings, err := repository.GetGlobalRankings(ctx)
	req.NoError(err)
	req.Len(rankings.CurrentCount, 3)
	req.Equal(domain.RoomID("big"), rankings.CurrentCount[0].Room)
	req.Equal(int64(7), rankings.CurrentCount[0].Value)
	req.Equal(domain.RoomID("medium"), rankings.CurrentCount[1].Room)
	req.Equal(domain.RoomID("small"), rankings.CurrentCount[2].Room)
	req.Equal(domain.RoomID("big"), rankings.HighWater[0].Room)
	req.Equal(domain.RoomID("big"), rankings.TotalAccepted[0].Room)

	total, err := repository.GetTotalAcrossRooms(ctx)
	req.NoError(err)
	req.Equal(int64(13), total)
}

func Test_Top_Contributors(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")

	for _, contributor := range []string{"alice", "bob", "alice", "clara", "alice", "bob"} {
		_, err := repository.Increment(ctx, room, contributor)
		req.NoError(err)
	}

	scores, err := repository.GetTopContributors(ctx, room, 2)
	req.NoError(err)
	req.Len(scores, 2)
	req.Equal(domain.ContributorScore{Contributor: "alice", Accepted: 3}, scores[0])
	req.Equal(domain.ContributorScore{Contributor: "bob", Accepted: 2}, scores[1])
}

func Test_Counting_Room_Mapping(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")

	_, found, err := repository.GetCountingRoom(ctx, room)
	req.NoError(err)
	req.False(found)

	req.NoError(repository.SetCountingRoom(ctx, room, "channel-42"))

	channel, found, err := repository.GetCountingRoom(ctx, room)
	req.NoError(err)
	req.True(found)
	req.Equal("channel-42", channel)
}

func Test_RemoveRoom_Deletes_All_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := newTestRepository(t)
	room := domain.RoomID("guild-1")
	other := domain.RoomID("guild-2")

	_, err := repository.Increment(ctx, room, "alice")
	req.NoError(err)
	_, err = repository.Increment(ctx, other, "bob")
	req.NoError(err)
	req.NoError(repository.SetCountingRoom(ctx, room, "channel-42"))

	req.NoError(repository.RemoveRoom(ctx, room))

	stats, err := repository.GetRoomStats(ctx, room)
	req.NoError(err)
	req.Equal(domain.RoomStats{}, stats)
	_, found, err := repository.GetCountingRoom(ctx, room)
	req.NoError(err)
	req.False(found)

	// Other rooms are untouched.
	current, err := repository.GetCurrentCount(ctx, other)
	req.NoError(err)
	req.Equal(int64(1), current)
}
