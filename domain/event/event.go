package event

import (
	"counting-lab/domain"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

// CountAccepted is emitted for every accepted contribution.
type CountAccepted struct {
	Room        domain.RoomID
	Contributor string
	Value       int64
	At          time.Time
}

func (e CountAccepted) RoomID() domain.RoomID {
	return e.Room
}

// GraceOpened is emitted when a wrong contribution opens a recovery window.
type GraceOpened struct {
	Room     domain.RoomID
	Window   uuid.UUID
	Expected int64
	Excluded string
	At       time.Time
}

func (e GraceOpened) RoomID() domain.RoomID {
	return e.Room
}

// GraceSaved is emitted when a correction closes the window in time.
type GraceSaved struct {
	Room        domain.RoomID
	Contributor string
	Value       int64
	At          time.Time
}

func (e GraceSaved) RoomID() domain.RoomID {
	return e.Room
}

// GraceExpired is emitted when the countdown wins and the room resets.
type GraceExpired struct {
	Room     domain.RoomID
	Expected int64
	At       time.Time
}

func (e GraceExpired) RoomID() domain.RoomID {
	return e.Room
}

// RoomReset is emitted for administrative resets, not grace expiries.
type RoomReset struct {
	Room domain.RoomID
	At   time.Time
}

func (e RoomReset) RoomID() domain.RoomID {
	return e.Room
}
