// Package runtime wires rooms, workers and event propagation together.
// It orchestrates the system without containing game rules itself.
package runtime

import (
	"context"
	"counting-lab/contract"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"counting-lab/observability"
	"counting-lab/runtime/workers"
	"log/slog"
	"sync"
	"time"
)

// Options bundles the engine tunables the orchestrator hands to its
// workers.
type Options struct {
	BufferSize        int
	GraceTicks        int
	GraceTickInterval time.Duration
	SinkTimeout       time.Duration
	HeartbeatInterval time.Duration
}

// Orchestrator owns one command channel and one supervised worker per
// room, created lazily on first message. The per-room channel is the
// serialization boundary the game relies on: rooms advance fully in
// parallel, transitions within a room never do.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	repository     contract.ICountRepository
	notifier       contract.INotifier
	stats          *observability.EngineStats
	rooms          map[domain.RoomID]chan domain.Command
	events         chan event.DomainEvent
	permanentSinks []contract.EventSink
	options        Options

	runCtx    context.Context
	runCancel context.CancelFunc
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry contract.IRegistry,
	repository contract.ICountRepository,
	notifier contract.INotifier,
	stats *observability.EngineStats,
	options Options,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		repository: repository,
		notifier:   notifier,
		stats:      stats,
		rooms:      make(map[domain.RoomID]chan domain.Command),
		events:     make(chan event.DomainEvent, options.BufferSize),
		options:    options,
	}
}

// Add registers permanent sinks receiving every domain event.
// Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Start launches the shared workers (fanout, heartbeat) under supervision.
// Room workers appear later, on first traffic.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.runCtx, o.runCancel = context.WithCancel(ctx)

	fanout := workers.NewEventFanout(o.log, o.events, o.permanentSinks, o.registry, o.options.SinkTimeout)
	heartbeat := workers.NewHeartbeatWorker(o.log, o.stats, o.repository, o.options.HeartbeatInterval)
	o.supervisor.Add(fanout, heartbeat)

	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(o.runCtx)
	return nil
}

// Submit routes one inbound message to its room's worker and waits for
// the verdict. Blocking store or notifier I/O inside one room never
// stalls another room's submission.
func (o *Orchestrator) Submit(ctx context.Context, msg domain.Message) (domain.Outcome, error) {
	commands := o.roomChannel(msg.Room)

	reply := make(chan domain.Outcome, 1)
	cmd := domain.SubmitCommand{Message: msg, Reply: reply}

	select {
	case <-ctx.Done():
		return domain.OutcomeIgnored, ctx.Err()
	case commands <- cmd:
	}
	select {
	case <-ctx.Done():
		return domain.OutcomeIgnored, ctx.Err()
	case outcome := <-reply:
		return outcome, nil
	}
}

// roomChannel returns the room's command channel, spawning its worker
// under supervision on first use.
func (o *Orchestrator) roomChannel(room domain.RoomID) chan domain.Command {
	o.mu.Lock()
	defer o.mu.Unlock()

	if commands, ok := o.rooms[room]; ok {
		return commands
	}

	commands := make(chan domain.Command, o.options.BufferSize)
	worker := workers.NewRoomWorker(
		room, commands, o.repository, o.notifier, o.events,
		o.stats, o.options.GraceTicks, o.options.GraceTickInterval, o.log,
	)
	o.rooms[room] = commands
	o.stats.SetLiveRooms(len(o.rooms))
	o.supervisor.Start(o.runCtx, worker)
	o.log.Info("Room worker started", "room", room)
	return commands
}

// ResetRoom performs an administrative reset through the store.
func (o *Orchestrator) ResetRoom(ctx context.Context, room domain.RoomID) error {
	if err := o.repository.Reset(ctx, room); err != nil {
		return err
	}
	select {
	case o.events <- event.RoomReset{Room: room, At: time.Now().UTC()}:
	default:
		o.log.Debug("Event channel full, dropping event")
	}
	return nil
}

// RegisterWatcher attaches a sink to a room's event stream.
func (o *Orchestrator) RegisterWatcher(watcherID string, room domain.RoomID, sink contract.EventSink) {
	o.registry.Subscribe(watcherID, room, sink)
}

// UnregisterWatcher detaches a watcher.
func (o *Orchestrator) UnregisterWatcher(watcherID string, room domain.RoomID) {
	o.registry.Unsubscribe(watcherID, room)
}

// Stop initiates a graceful shutdown: the supervision context is
// cancelled, which stops room workers and any countdown they own.
// Grace windows are transient and die with the process.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	if o.runCancel != nil {
		o.runCancel()
	}
	o.supervisor.Stop()
}
