// Package observability tracks engine-level counters.
// Counters are written with atomics on the hot path; snapshots are
// taken under a read lock for the heartbeat worker and debug endpoint.
package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// EngineSnapshot aggregates all engine metrics for logging and the
// debug endpoint.
type EngineSnapshot struct {
	MessagesProcessed uint64 `json:"messages_processed"`
	Accepted          uint64 `json:"accepted"`
	Ignored           uint64 `json:"ignored"`
	GracesOpened      uint64 `json:"graces_opened"`
	GracesSaved       uint64 `json:"graces_saved"`
	GracesExpired     uint64 `json:"graces_expired"`
	StoreFailures     uint64 `json:"store_failures"`
	LiveRooms         int    `json:"live_rooms"`
	At                string `json:"at"`
}

type EngineStats struct {
	mu        sync.RWMutex
	liveRooms int

	processed     uint64
	accepted      uint64
	ignored       uint64
	gracesOpened  uint64
	gracesSaved   uint64
	gracesExpired uint64
	storeFailures uint64
}

func NewEngineStats() *EngineStats {
	return &EngineStats{}
}

func (s *EngineStats) IncrProcessed() {
	atomic.AddUint64(&s.processed, 1)
}

func (s *EngineStats) IncrAccepted() {
	atomic.AddUint64(&s.accepted, 1)
}

func (s *EngineStats) IncrIgnored() {
	atomic.AddUint64(&s.ignored, 1)
}

func (s *EngineStats) IncrGracesOpened() {
	atomic.AddUint64(&s.gracesOpened, 1)
}

func (s *EngineStats) IncrGracesSaved() {
	atomic.AddUint64(&s.gracesSaved, 1)
}

func (s *EngineStats) IncrGracesExpired() {
	atomic.AddUint64(&s.gracesExpired, 1)
}

func (s *EngineStats) IncrStoreFailures() {
	atomic.AddUint64(&s.storeFailures, 1)
}

// SetLiveRooms records how many room workers currently exist.
func (s *EngineStats) SetLiveRooms(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveRooms = n
}

func (s *EngineStats) Snapshot() EngineSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EngineSnapshot{
		MessagesProcessed: atomic.LoadUint64(&s.processed),
		Accepted:          atomic.LoadUint64(&s.accepted),
		Ignored:           atomic.LoadUint64(&s.ignored),
		GracesOpened:      atomic.LoadUint64(&s.gracesOpened),
		GracesSaved:       atomic.LoadUint64(&s.gracesSaved),
		GracesExpired:     atomic.LoadUint64(&s.gracesExpired),
		StoreFailures:     atomic.LoadUint64(&s.storeFailures),
		LiveRooms:         s.liveRooms,
		At:                time.Now().UTC().Format(time.RFC3339),
	}
}
