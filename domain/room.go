package domain

// RoomID identifies a conversation.
type RoomID string

// DefaultHistoryCapacity is the number of entries a room keeps.
const DefaultHistoryCapacity = 20

// History is the bounded, ordered message log of a single room.
// It is not safe for concurrent use, callers serialize access.
type History struct {
	ID       RoomID
	capacity int
	messages []ConversationMessage
}

func NewHistory(id RoomID, capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		ID:       id,
		capacity: capacity,
		messages: nil,
	}
}

// Append adds a message and evicts the oldest entries beyond capacity.
func (h *History) Append(message ConversationMessage) {
	h.messages = append(h.messages, message)
	if overflow := len(h.messages) - h.capacity; overflow > 0 {
		kept := make([]ConversationMessage, h.capacity)
		copy(kept, h.messages[overflow:])
		h.messages = kept
	}
}

// Messages returns a copy of the entries, oldest first.
func (h *History) Messages() []ConversationMessage {
	out := make([]ConversationMessage, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *History) Len() int {
	return len(h.messages)
}
