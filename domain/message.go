package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contribution as delivered by the gateway.
// Channel is only consumed by the gateway-level counting-room filter;
// the evaluator never reads it.
type Message struct {
	ID        uuid.UUID
	Room      RoomID `validate:"required"`
	Channel   string
	Author    string `validate:"required"`
	Automated bool
	Content   string
	CreatedAt time.Time
}
