package repositories

import (
	"chat-engine/domain"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func userMessage(i int) domain.ConversationMessage {
	return domain.ConversationMessage{Role: domain.RoleUser, Message: fmt.Sprintf("msg %d", i), Timestamp: int64(i)}
}

func TestConversationStore_Get_UnseenRoom(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(20)

	messages := store.Get("nowhere")
	req.NotNil(messages)
	req.Empty(messages)
}

func TestConversationStore_Append_BoundedFIFO(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(20)

	for i := 0; i < 21; i++ {
		store.Append("room-1", userMessage(i))
	}

	messages := store.Get("room-1")
	req.Len(messages, 20)
	req.Equal("msg 1", messages[0].Message)
	req.Equal("msg 20", messages[19].Message)
	for _, m := range messages {
		req.NotEqual("msg 0", m.Message)
	}
}

func TestConversationStore_RoomsAreIsolated(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(20)

	store.Append("a", userMessage(1))
	store.Append("b", userMessage(2))

	req.Equal([]domain.ConversationMessage{userMessage(1)}, store.Get("a"))
	req.Equal([]domain.ConversationMessage{userMessage(2)}, store.Get("b"))
	req.ElementsMatch([]domain.RoomID{"a", "b"}, store.Rooms())
}

func TestConversationStore_Clear_Idempotent(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(20)
	store.Append("a", userMessage(1))

	store.Clear("a")
	store.Clear("a")
	store.Clear("never-seen")

	req.Empty(store.Get("a"))

	store.Append("a", userMessage(2))
	req.Equal([]domain.ConversationMessage{userMessage(2)}, store.Get("a"))
}

func TestConversationStore_ConcurrentAppends(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(20)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			room := domain.RoomID(fmt.Sprintf("room-%d", g%2))
			for i := 0; i < 50; i++ {
				store.Append(room, userMessage(i))
			}
		}(g)
	}
	wg.Wait()

	req.Len(store.Get("room-0"), 20)
	req.Len(store.Get("room-1"), 20)
}

func TestConversationStore_LockRoom_SerializesTurns(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(100)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			unlock := store.LockRoom("shared")
			defer unlock()
			store.Append("shared", domain.ConversationMessage{Role: domain.RoleUser, Message: fmt.Sprint(g)})
			store.Append("shared", domain.ConversationMessage{Role: domain.RoleAssistant, Message: fmt.Sprint(g)})
		}(g)
	}
	wg.Wait()

	messages := store.Get("shared")
	req.Len(messages, 20)
	for i := 0; i < len(messages); i += 2 {
		req.Equal(domain.RoleUser, messages[i].Role)
		req.Equal(domain.RoleAssistant, messages[i+1].Role)
		req.Equal(messages[i].Message, messages[i+1].Message)
	}

	store.turnMu.Lock()
	defer store.turnMu.Unlock()
	req.Empty(store.turns)
}
