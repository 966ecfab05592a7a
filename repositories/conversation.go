package repositories

import (
	"chat-engine/domain"
	"sync"
)

// ConversationStore owns every room history of the process.
// Appends on different rooms never contend on the same history lock.
type ConversationStore struct {
	mu        sync.RWMutex
	capacity  int
	histories map[domain.RoomID]*roomHistory

	turnMu sync.Mutex
	turns  map[domain.RoomID]*turnLock
}

type roomHistory struct {
	mu      sync.Mutex
	history *domain.History
}

type turnLock struct {
	mu   sync.Mutex
	refs int
}

func NewConversationStore(capacity int) *ConversationStore {
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}
	return &ConversationStore{
		capacity:  capacity,
		histories: make(map[domain.RoomID]*roomHistory),
		turns:     make(map[domain.RoomID]*turnLock),
	}
}

// Append adds a message to the room, creating its history on first use.
func (s *ConversationStore) Append(roomID domain.RoomID, message domain.ConversationMessage) {
	room := s.room(roomID)
	room.mu.Lock()
	defer room.mu.Unlock()
	room.history.Append(message)
}

// Get returns the room messages oldest first, empty for an unseen room.
func (s *ConversationStore) Get(roomID domain.RoomID) []domain.ConversationMessage {
	s.mu.RLock()
	room, ok := s.histories[roomID]
	s.mu.RUnlock()
	if !ok {
		return []domain.ConversationMessage{}
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return room.history.Messages()
}

// Clear forgets the room history. Clearing an unknown room is a no-op.
func (s *ConversationStore) Clear(roomID domain.RoomID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.histories, roomID)
}

// Rooms lists the rooms currently holding a history.
func (s *ConversationStore) Rooms() []domain.RoomID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]domain.RoomID, 0, len(s.histories))
	for id := range s.histories {
		rooms = append(rooms, id)
	}
	return rooms
}

// LockRoom serializes turns of one room. The returned func releases the lock
// and must be called exactly once. Locks of idle rooms are dropped.
func (s *ConversationStore) LockRoom(roomID domain.RoomID) func() {
	s.turnMu.Lock()
	l, ok := s.turns[roomID]
	if !ok {
		l = &turnLock{}
		s.turns[roomID] = l
	}
	l.refs++
	s.turnMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.turnMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.turns, roomID)
		}
		s.turnMu.Unlock()
	}
}

func (s *ConversationStore) room(roomID domain.RoomID) *roomHistory {
	s.mu.RLock()
	room, ok := s.histories[roomID]
	s.mu.RUnlock()
	if ok {
		return room
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok = s.histories[roomID]; ok {
		return room
	}
	room = &roomHistory{history: domain.NewHistory(roomID, s.capacity)}
	s.histories[roomID] = room
	return room
}
