// Package projection builds local read models from observed events.
// Projections never emit events and never touch the store.
package projection

import (
	"context"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"sync"
	"time"
)

// RoomActivity is the projected live view of one room.
type RoomActivity struct {
	Current         int64
	LastContributor string
	Recovering      bool
	Saves           int64
	Losses          int64
	UpdatedAt       time.Time
}

// Scoreboard keeps an in-memory picture of every room's recent activity,
// fed exclusively by domain events. It can lag the store and rebuilds
// from scratch on restart.
type Scoreboard struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]RoomActivity
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{rooms: make(map[domain.RoomID]RoomActivity)}
}

func (s *Scoreboard) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := s.rooms[e.RoomID()]
	switch evt := e.(type) {
	case event.CountAccepted:
		activity.Current = evt.Value
		activity.LastContributor = evt.Contributor
		activity.UpdatedAt = evt.At
	case event.GraceOpened:
		activity.Recovering = true
		activity.UpdatedAt = evt.At
	case event.GraceSaved:
		activity.Current = evt.Value
		activity.LastContributor = evt.Contributor
		activity.Recovering = false
		activity.Saves++
		activity.UpdatedAt = evt.At
	case event.GraceExpired:
		activity.Current = 0
		activity.LastContributor = ""
		activity.Recovering = false
		activity.Losses++
		activity.UpdatedAt = evt.At
	case event.RoomReset:
		activity.Current = 0
		activity.LastContributor = ""
		activity.Recovering = false
		activity.UpdatedAt = evt.At
	}
	s.rooms[e.RoomID()] = activity
	return nil
}

// Activity returns the projected state for one room.
func (s *Scoreboard) Activity(room domain.RoomID) (RoomActivity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.rooms[room]
	return activity, ok
}

// Rooms returns a copy of every projected room state.
func (s *Scoreboard) Rooms() map[domain.RoomID]RoomActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[domain.RoomID]RoomActivity, len(s.rooms))
	for room, activity := range s.rooms {
		snapshot[room] = activity
	}
	return snapshot
}
