package runtime

import (
	"counting-lab/contract"
	"counting-lab/domain"
	"sync"
)

type Set map[string]struct{}

// Registry tracks watchers (leaderboard viewers, gateway adapters)
// subscribed to a room's event stream.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]contract.EventSink // map watcher -> Sink
	roomMembers map[domain.RoomID]Set         // map room -> watchers
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[string]contract.EventSink),
		roomMembers: make(map[domain.RoomID]Set),
	}
}

// GetSinksForRoom resolves the active sinks subscribed to a room.
// Membership and sessions are kept separate so a watcher following several
// rooms is still managed through a single connection entry.
// Returns nil if the room has no watchers.
func (r *Registry) GetSinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for watcherID := range members {
		if sink, exists := r.sessions[watcherID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a watcher's sink and attaches it to a room,
// initializing the room's member set on the fly.
func (r *Registry) Subscribe(watcherID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[watcherID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(Set)
	}
	r.roomMembers[roomID][watcherID] = struct{}{}
}

// Unsubscribe removes a watcher from the registry and their room.
// Empty member sets are removed to avoid leaking room entries over time.
func (r *Registry) Unsubscribe(watcherID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, watcherID)

	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, watcherID)

		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
}
