package domain

import (
	"github.com/google/uuid"
)

type Command interface {
	RoomID() RoomID
}

// SubmitCommand carries one inbound message into a room's worker.
// Reply receives exactly one Outcome; it must be buffered by the sender.
type SubmitCommand struct {
	Message Message
	Reply   chan<- Outcome
}

func (c SubmitCommand) RoomID() RoomID {
	return c.Message.Room
}

// GraceTickCommand is posted by a countdown task at each elapsed tick.
// Window disambiguates stale ticks from a superseded or resolved window.
type GraceTickCommand struct {
	Room      RoomID
	Window    uuid.UUID
	Remaining int
}

func (c GraceTickCommand) RoomID() RoomID {
	return c.Room
}

// GraceExpireCommand is posted by a countdown task when it reaches zero.
type GraceExpireCommand struct {
	Room   RoomID
	Window uuid.UUID
}

func (c GraceExpireCommand) RoomID() RoomID {
	return c.Room
}
