package notify

import (
	"context"
	"counting-lab/domain"

	"github.com/gookit/color"
)

// ConsoleNotifier renders feedback directly to the terminal. Used by the
// tester command to make scenario runs readable.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) RenderCountdown(_ context.Context, room domain.RoomID, secondsRemaining int, expected int64) {
	color.Yellow.Printf("[%s] ⏳ %ds left to save the count with %d\n", room, secondsRemaining, expected)
}

func (n *ConsoleNotifier) RenderSaved(_ context.Context, room domain.RoomID, contributor string, expected int64) {
	color.Green.Printf("[%s] ✅ %s saved the count at %d\n", room, contributor, expected)
}

func (n *ConsoleNotifier) RenderFailed(_ context.Context, room domain.RoomID, expected int64) {
	color.Red.Printf("[%s] ❌ Nobody posted %d in time, count resets to 0\n", room, expected)
}
