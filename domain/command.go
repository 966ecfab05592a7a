package domain

// SendMessageCommand is a user message posted by a session to a room.
type SendMessageCommand struct {
	Room      RoomID `validate:"required,max=128"`
	SessionID string `validate:"required"`
	UserID    string `validate:"required,max=128"`
	Text      string `validate:"max=4096"`
	// Timestamp in epoch milliseconds, zero means now.
	Timestamp int64 `validate:"gte=0"`
}

func (c SendMessageCommand) RoomID() RoomID {
	return c.Room
}
