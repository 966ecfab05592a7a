// Package sink holds EventSink implementations fed by the dispatcher.
package sink

import (
	"chat-engine/domain"
	"chat-engine/domain/event"
	"context"
	"sync"
)

// Timeline keeps the replies delivered to a session, in delivery order.
type Timeline struct {
	mu      sync.Mutex
	Owner   string
	replies []domain.Reply
	typing  int
	notify  chan domain.Reply
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner, notify: make(chan domain.Reply, 16)}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.TypingStarted:
		t.mu.Lock()
		t.typing++
		t.mu.Unlock()
	case event.ReplyReady:
		t.mu.Lock()
		t.replies = append(t.replies, evt.Reply)
		t.mu.Unlock()
		select {
		case t.notify <- evt.Reply:
		default:
		}
	}
	return nil
}

func (t *Timeline) Replies() []domain.Reply {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Reply(nil), t.replies...)
}

// TypingCount is the number of typing indicators received.
func (t *Timeline) TypingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.typing
}

// Delivered signals every reply as it arrives. Replies are dropped from the
// channel, never from the timeline, when nobody reads it.
func (t *Timeline) Delivered() <-chan domain.Reply {
	return t.notify
}
