//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-engine/domain"
	"chat-engine/domain/event"
	"context"
)

// EntityExtractor finds people, places, organizations and dates in raw text.
type EntityExtractor interface {
	Extract(text string) (domain.Entities, error)
}

// TextAnalyzer enriches a user message with entities, sentiment and language.
type TextAnalyzer interface {
	Analyze(text string) (domain.Analysis, error)
}

// TrainingDataSource yields the corpus a training run learns from. It may
// return partial data together with the error describing what was dropped.
type TrainingDataSource interface {
	Load() (domain.TrainingData, error)
}

// MessageArchive keeps assistant messages beyond the bounded in-memory history.
type MessageArchive interface {
	StoreMessage(roomID domain.RoomID, message domain.ConversationMessage) error
	GetMessages(roomID domain.RoomID, limit int) ([]domain.ConversationMessage, error)
}

// ModelStore persists a trained model. Save must never expose a partial file.
type ModelStore interface {
	Save(model domain.TrainedModel) error
	Load() (domain.TrainedModel, error)
}

// EventSink receives the events of the rooms a session joined.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	GetSinksForRoom(roomID domain.RoomID) []EventSink
	Subscribe(sessionID string, roomID domain.RoomID, sink EventSink)
	Unsubscribe(sessionID string, roomID domain.RoomID)
	SessionContext(sessionID string) (context.Context, bool)
}

// ReplyDeliverer pushes a reply to the sinks of a room on behalf of a session.
type ReplyDeliverer interface {
	Deliver(ctx context.Context, sessionID string, roomID domain.RoomID, reply domain.Reply) error
}

// IOrchestrator is what transports call per turn.
type IOrchestrator interface {
	ProcessMessage(ctx context.Context, text, userID string, roomID domain.RoomID, timestamp int64) domain.Reply
	GetConversationHistory(roomID domain.RoomID) []domain.ConversationMessage
	ClearConversationHistory(roomID domain.RoomID)
	Train(ctx context.Context) error
	LoadModel(ctx context.Context) error
}
