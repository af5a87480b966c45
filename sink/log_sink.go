// Package sink holds permanent event consumers attached to the fanout.
package sink

import (
	"context"
	"counting-lab/domain/event"
	"fmt"
	"log/slog"
)

// LogSink writes every domain event as a structured log line, giving the
// engine a flat audit trail of room activity.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (s LogSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.CountAccepted:
		s.log.Info("Count accepted", "room", evt.Room, "contributor", evt.Contributor, "value", evt.Value)
	case event.GraceOpened:
		s.log.Info("Grace opened", "room", evt.Room, "expected", evt.Expected, "excluded", evt.Excluded)
	case event.GraceSaved:
		s.log.Info("Grace saved", "room", evt.Room, "contributor", evt.Contributor, "value", evt.Value)
	case event.GraceExpired:
		s.log.Info("Grace expired", "room", evt.Room, "expected", evt.Expected)
	case event.RoomReset:
		s.log.Info("Room reset", "room", evt.Room)
	default:
		s.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
	}
	return nil
}
