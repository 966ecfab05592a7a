package runtime

import (
	"chat-engine/contract"
	"chat-engine/domain"
	"chat-engine/domain/event"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Room_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID("lobby")
	sink := Sink{name: "a"}

	// Given no session is connected
	req.Empty(registry.GetSinksForRoom(roomID))

	// When a session subscribes a room
	registry.Subscribe(sessionID, roomID, sink)

	// Then
	req.Len(registry.GetSinksForRoom(roomID), 1)
	req.Contains(registry.GetSinksForRoom(roomID), sink)
	ctx, ok := registry.SessionContext(sessionID)
	req.True(ok)
	req.NoError(ctx.Err())
}

func TestRegistry_Subscribe_One_Room_Multiple_Sessions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	roomID := domain.RoomID("lobby")

	registry.Subscribe(uuid.NewString(), roomID, Sink{name: "a"})
	registry.Subscribe(uuid.NewString(), roomID, Sink{name: "b"})

	req.ElementsMatch(
		[]contract.EventSink{Sink{name: "a"}, Sink{name: "b"}},
		registry.GetSinksForRoom(roomID),
	)
}

func TestRegistry_Subscribe_Again_Keeps_Session_Context(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()

	registry.Subscribe(sessionID, "lobby", Sink{name: "a"})
	first, _ := registry.SessionContext(sessionID)
	registry.Subscribe(sessionID, "support", Sink{name: "b"})
	second, _ := registry.SessionContext(sessionID)

	req.Equal(first, second)
	// The sink is shared by every room of the session.
	req.Equal(Sink{name: "b"}, registry.GetSinksForRoom("lobby")[0])
	req.Equal(Sink{name: "b"}, registry.GetSinksForRoom("support")[0])
}

func TestRegistry_Unsubscribe_Cancels_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID("lobby")
	registry.Subscribe(sessionID, roomID, Sink{})
	ctx, _ := registry.SessionContext(sessionID)

	registry.Unsubscribe(sessionID, roomID)

	req.ErrorIs(ctx.Err(), context.Canceled)
	_, ok := registry.SessionContext(sessionID)
	req.False(ok)
	req.Nil(registry.GetSinksForRoom(roomID))

	// Unsubscribing twice is harmless
	registry.Unsubscribe(sessionID, roomID)
}

func TestRegistry_Base_Context_Ends_Sessions(t *testing.T) {
	req := require.New(t)
	base, cancel := context.WithCancel(context.Background())
	registry := NewRegistryWithContext(base)
	sessionID := uuid.NewString()
	registry.Subscribe(sessionID, "lobby", Sink{})
	ctx, _ := registry.SessionContext(sessionID)

	cancel()

	req.ErrorIs(ctx.Err(), context.Canceled)
}
