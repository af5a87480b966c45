package workers

import (
	"context"
	"counting-lab/contract"
	"counting-lab/domain/event"
	"log/slog"
	"time"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts domain events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (projections, logs),
// not for core game logic.
type EventFanout struct {
	log            *slog.Logger
	events         <-chan event.DomainEvent
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	sinkTimeout    time.Duration
}

func NewEventFanout(
	log *slog.Logger,
	events <-chan event.DomainEvent,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	sinkTimeout time.Duration,
) *EventFanout {
	return &EventFanout{
		log:            log,
		events:         events,
		permanentSinks: permanentSinks,
		registry:       registry,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.fanout(ctx, e)
		}
	}
}

// fanout delivers one event to every permanent sink plus the sinks
// subscribed to the event's room. A slow or failing sink is logged and
// skipped, never propagated.
func (w *EventFanout) fanout(ctx context.Context, e event.DomainEvent) {
	sinks := append(w.permanentSinks, w.registry.GetSinksForRoom(e.RoomID())...)
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, e); err != nil {
			w.log.Warn("Sink rejected event", "room", e.RoomID(), "error", err)
		}
		cancel()
	}
}
