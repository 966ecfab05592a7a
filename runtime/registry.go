package runtime

import (
	"chat-engine/contract"
	"chat-engine/domain"
	"context"
	"sync"
)

type Set map[string]struct{}

type session struct {
	sink   contract.EventSink
	ctx    context.Context
	cancel context.CancelFunc
}

type Registry struct {
	mu          sync.RWMutex
	base        context.Context
	sessions    map[string]*session   // map session -> sink and lifetime
	roomMembers map[domain.RoomID]Set // map room to sessions
}

func NewRegistry() *Registry {
	return NewRegistryWithContext(context.Background())
}

// NewRegistryWithContext ties every session lifetime to ctx.
func NewRegistryWithContext(ctx context.Context) *Registry {
	return &Registry{
		base:        ctx,
		sessions:    make(map[string]*session),
		roomMembers: make(map[domain.RoomID]Set),
	}
}

// GetSinksForRoom resolves the members of a room into their sinks.
// Returns nil if the room doesn't exist or has no members.
func (r *Registry) GetSinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for sessionID := range members {
		if s, exists := r.sessions[sessionID]; exists {
			activeSinks = append(activeSinks, s.sink)
		}
	}
	return activeSinks
}

// Subscribe registers the sink of a session and adds the session to the room.
// A session that is already known keeps its context and gets the new sink.
func (r *Registry) Subscribe(sessionID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		s.sink = sink
	} else {
		ctx, cancel := context.WithCancel(r.base)
		r.sessions[sessionID] = &session{sink: sink, ctx: ctx, cancel: cancel}
	}

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(Set)
	}
	r.roomMembers[roomID][sessionID] = struct{}{}
}

// Unsubscribe ends the session, cancelling its context, and removes it from the room.
// No empty sets are left in the room map.
func (r *Registry) Unsubscribe(sessionID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		s.cancel()
		delete(r.sessions, sessionID)
	}

	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
}

// SessionContext returns the context cancelled when the session ends.
func (r *Registry) SessionContext(sessionID string) (context.Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return s.ctx, true
}
