package runtime

import (
	"chat-engine/ai"
	"chat-engine/contract"
	"chat-engine/domain"
	"chat-engine/domain/event"
	"chat-engine/errors"
	"chat-engine/mocks"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu       sync.Mutex
	events   []event.DomainEvent
	received chan event.DomainEvent
}

func newRecordingSink() *recordingSink {
	return &recordingSink{received: make(chan event.DomainEvent, 10)}
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	s.received <- e
	return nil
}

func (s *recordingSink) Events() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent(nil), s.events...)
}

func seededChooser() ai.Chooser {
	seed := uint64(1)
	return ai.NewChooser(&seed)
}

func TestDispatcher_Deliver(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	sink := newRecordingSink()
	registry.Subscribe("s1", "lobby", sink)
	dispatcher := NewDispatcher(log, registry, 5*time.Millisecond, 10*time.Millisecond, seededChooser())
	reply := domain.Reply{Role: domain.RoleAssistant, Message: "Hi!", RoomID: "lobby"}

	start := time.Now()
	err := dispatcher.Deliver(context.Background(), "s1", "lobby", reply)

	req.NoError(err)
	req.GreaterOrEqual(time.Since(start), 5*time.Millisecond)
	events := sink.Events()
	req.Len(events, 3)
	req.IsType(event.TypingStarted{}, events[0])
	req.IsType(event.TypingStopped{}, events[1])
	ready, ok := events[2].(event.ReplyReady)
	req.True(ok)
	req.Equal(reply, ready.Reply)
	req.Equal(domain.RoomID("lobby"), ready.RoomID())
}

func TestDispatcher_Deliver_SessionEndsDuringDelay(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	sink := newRecordingSink()
	registry.Subscribe("s1", "lobby", sink)
	dispatcher := NewDispatcher(log, registry, time.Minute, time.Minute, seededChooser())

	done := make(chan error, 1)
	go func() {
		done <- dispatcher.Deliver(context.Background(), "s1", "lobby", domain.Reply{Message: "late"})
	}()

	select {
	case e := <-sink.received:
		req.IsType(event.TypingStarted{}, e)
	case <-time.After(time.Second):
		req.Fail("typing never started")
	}
	registry.Unsubscribe("s1", "lobby")

	select {
	case err := <-done:
		req.ErrorIs(err, errors.ErrSessionClosed)
	case <-time.After(time.Second):
		req.Fail("delivery did not stop with the session")
	}
	req.Len(sink.Events(), 1)
}

func TestDispatcher_Deliver_ContextCancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	sink := newRecordingSink()
	registry.Subscribe("s1", "lobby", sink)
	dispatcher := NewDispatcher(log, registry, time.Minute, time.Minute, seededChooser())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := dispatcher.Deliver(ctx, "s1", "lobby", domain.Reply{})

	req.ErrorIs(err, context.DeadlineExceeded)
	req.Len(sink.Events(), 1)
}

func TestDispatcher_Deliver_UnknownSession(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dispatcher := NewDispatcher(log, NewRegistry(), 0, 0, seededChooser())

	err := dispatcher.Deliver(context.Background(), "ghost", "lobby", domain.Reply{})

	req.ErrorIs(err, errors.ErrSessionClosed)
}

func TestDispatcher_Deliver_FailingSinkDoesNotStopOthers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockEventSink(ctrl)
	failing.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("closed pipe")).Times(3)
	healthy := newRecordingSink()

	registry := mocks.NewMockIRegistry(ctrl)
	registry.EXPECT().SessionContext("s1").Return(context.Background(), true)
	registry.EXPECT().GetSinksForRoom(domain.RoomID("lobby")).
		Return([]contract.EventSink{failing, healthy}).
		Times(3)

	dispatcher := NewDispatcher(log, registry, 0, 0, seededChooser())
	req.NoError(dispatcher.Deliver(context.Background(), "s1", "lobby", domain.Reply{}))
	req.Len(healthy.Events(), 3)
}
