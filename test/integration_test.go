package test

import (
	"chat-engine/analysis"
	"chat-engine/domain"
	"chat-engine/repositories"
	"chat-engine/runtime"
	"chat-engine/services"
	"chat-engine/sink"
	"chat-engine/storage"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const intents = `{
  "intents": [
    {
      "tag": "greeting",
      "patterns": ["hello", "hi there", "good morning", "hey"],
      "responses": ["Hello! How can I help you?"]
    }
  ]
}`

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// 1. Data directory and archive
	dataDir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dataDir, runtime.IntentsFile), []byte(intents), 0o644))
	req.NoError(os.WriteFile(filepath.Join(dataDir, runtime.KnowledgeFile), []byte(`{"qa_pairs": []}`), 0o644))
	modelPath := filepath.Join(dataDir, "trained-model.json")

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	archive := repositories.NewArchiveRepository(db, log)

	// 2. Engine
	seed := uint64(3)
	opts := runtime.DefaultOptions()
	opts.Seed = &seed
	analyzer, err := analysis.NewDefaultAnalyzer(log)
	req.NoError(err)
	orchestrator := runtime.NewOrchestrator(log,
		repositories.NewConversationStore(domain.DefaultHistoryCapacity),
		runtime.NewTrainingDataLoader(os.DirFS(dataDir), log),
		storage.NewModelFile(modelPath, log),
		analyzer, archive, opts)
	req.NoError(orchestrator.LoadModel(ctx))
	req.FileExists(modelPath)

	registry := runtime.NewRegistry()
	dispatcher := runtime.NewDispatcher(log, registry, time.Millisecond, 5*time.Millisecond, nil)
	service := services.NewChatService(log, orchestrator, registry, dispatcher)

	// 3. Two sessions in the same room
	alice, bob := uuid.NewString(), uuid.NewString()
	aliceTimeline, bobTimeline := sink.NewTimeline("alice"), sink.NewTimeline("bob")
	service.Join(alice, "lobby", aliceTimeline)
	service.Join(bob, "lobby", bobTimeline)

	// When alice greets
	reply, err := service.Send(ctx, domain.SendMessageCommand{
		Room: "lobby", SessionID: alice, UserID: "alice", Text: "hello",
	})

	// Then both sessions receive the greeting
	req.NoError(err)
	req.Equal("greeting", reply.Intent)
	req.Equal("Hello! How can I help you?", reply.Message)
	for _, timeline := range []*sink.Timeline{aliceTimeline, bobTimeline} {
		select {
		case got := <-timeline.Delivered():
			req.Equal(reply, got)
		case <-time.After(time.Second):
			req.Fail("reply not delivered", timeline.Owner)
		}
		req.Equal(1, timeline.TypingCount())
	}

	// And the room history and archive hold the turn
	history := service.History("lobby")
	req.Len(history, 2)
	archived, err := archive.GetMessages("lobby", 0)
	req.NoError(err)
	req.Len(archived, 1)
	req.Equal(reply.Message, archived[0].Message)

	// 4. A restarted engine answers from the persisted model
	restarted := runtime.NewOrchestrator(log,
		repositories.NewConversationStore(domain.DefaultHistoryCapacity),
		runtime.NewTrainingDataLoader(os.DirFS(t.TempDir()), log),
		storage.NewModelFile(modelPath, log),
		analyzer, nil, opts)
	req.NoError(restarted.LoadModel(ctx))
	req.Equal(orchestrator.Responses(), restarted.Responses())
	again := restarted.ProcessMessage(ctx, "hello", "alice", "lobby", 0)
	req.Equal("greeting", again.Intent)

	// 5. Leaving ends delivery for the session
	service.Leave(alice, "lobby")
	_, err = service.Send(ctx, domain.SendMessageCommand{
		Room: "lobby", SessionID: alice, UserID: "alice", Text: "hello",
	})
	req.Error(err)
}
