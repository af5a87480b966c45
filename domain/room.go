// Package domain contains core concepts of the counting game.
// A Room is an isolated counting context: one sequence, one state.
package domain

// RoomID is an opaque room identifier. The engine never orders or
// computes on it.
type RoomID string

// RoomStats is the aggregate view of a room's counters.
// HighWater and TotalAccepted are monotonic.
type RoomStats struct {
	Current       int64
	HighWater     int64
	TotalAccepted int64
}

// RankingEntry associates a room with one statistic value.
type RankingEntry struct {
	Room  RoomID
	Value int64
}

// Rankings holds the global per-statistic leaderboards, descending.
type Rankings struct {
	CurrentCount  []RankingEntry
	HighWater     []RankingEntry
	TotalAccepted []RankingEntry
}

// ContributorScore is the per-room tally of accepted contributions
// for one participant.
type ContributorScore struct {
	Contributor string
	Accepted    int64
}
