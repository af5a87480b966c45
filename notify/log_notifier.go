// Package notify provides INotifier implementations for environments
// where the real chat gateway is absent. Rendering is fire-and-forget;
// nothing here can fail a state transition.
package notify

import (
	"context"
	"counting-lab/domain"
	"log/slog"
)

// LogNotifier renders countdown and resolution feedback as structured
// log lines. Used by the engine daemon when no gateway is attached.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) RenderCountdown(_ context.Context, room domain.RoomID, secondsRemaining int, expected int64) {
	n.log.Info("Countdown", "room", room, "seconds_remaining", secondsRemaining, "expected", expected)
}

func (n *LogNotifier) RenderSaved(_ context.Context, room domain.RoomID, contributor string, expected int64) {
	n.log.Info("Count saved", "room", room, "contributor", contributor, "value", expected)
}

func (n *LogNotifier) RenderFailed(_ context.Context, room domain.RoomID, expected int64) {
	n.log.Info("Count lost, back to zero", "room", room, "expected", expected)
}
