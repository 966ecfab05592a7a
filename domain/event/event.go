// Package event defines what the runtime pushes to room sinks after a turn.
package event

import (
	"chat-engine/domain"
	"time"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

type TypingStarted struct {
	Room domain.RoomID
	At   time.Time
}

func (e TypingStarted) RoomID() domain.RoomID {
	return e.Room
}

type TypingStopped struct {
	Room domain.RoomID
	At   time.Time
}

func (e TypingStopped) RoomID() domain.RoomID {
	return e.Room
}

// ReplyReady carries the assistant reply of a turn.
type ReplyReady struct {
	Room  domain.RoomID
	Reply domain.Reply
	At    time.Time
}

func (e ReplyReady) RoomID() domain.RoomID {
	return e.Room
}
