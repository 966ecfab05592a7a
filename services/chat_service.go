package services

import (
	"chat-engine/contract"
	"chat-engine/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type IChatService interface {
	Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Reply, error)
	History(roomID domain.RoomID) []domain.ConversationMessage
	Clear(roomID domain.RoomID)
	Join(sessionID string, roomID domain.RoomID, sink contract.EventSink)
	Leave(sessionID string, roomID domain.RoomID)
	Retrain(ctx context.Context) error
}

type ChatService struct {
	log          *slog.Logger
	orchestrator contract.IOrchestrator
	registry     contract.IRegistry
	deliverer    contract.ReplyDeliverer
	validator    *validator.Validate
}

// NewChatService builds the service transports talk to. A nil deliverer
// returns replies without pushing them to the room sinks.
func NewChatService(log *slog.Logger, o contract.IOrchestrator, registry contract.IRegistry, deliverer contract.ReplyDeliverer) *ChatService {
	return &ChatService{
		log:          log,
		orchestrator: o,
		registry:     registry,
		deliverer:    deliverer,
		validator:    validator.New(),
	}
}

// Send runs a turn and delivers its reply to the room. Delivery waits
// for the typing delay, the reply is returned even when delivery fails.
func (s *ChatService) Send(ctx context.Context, cmd domain.SendMessageCommand) (domain.Reply, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return domain.Reply{}, fmt.Errorf("invalid message: %w", err)
	}
	reply := s.orchestrator.ProcessMessage(ctx, cmd.Text, cmd.UserID, cmd.RoomID(), cmd.Timestamp)
	if s.deliverer == nil {
		return reply, nil
	}
	if err := s.deliverer.Deliver(ctx, cmd.SessionID, cmd.RoomID(), reply); err != nil {
		s.log.Debug("Reply not delivered", "room", cmd.RoomID(), "session", cmd.SessionID, "error", err)
		return reply, err
	}
	return reply, nil
}

func (s *ChatService) History(roomID domain.RoomID) []domain.ConversationMessage {
	return s.orchestrator.GetConversationHistory(roomID)
}

func (s *ChatService) Clear(roomID domain.RoomID) {
	s.orchestrator.ClearConversationHistory(roomID)
}

func (s *ChatService) Join(sessionID string, roomID domain.RoomID, sink contract.EventSink) {
	s.registry.Subscribe(sessionID, roomID, sink)
}

func (s *ChatService) Leave(sessionID string, roomID domain.RoomID) {
	s.registry.Unsubscribe(sessionID, roomID)
}

func (s *ChatService) Retrain(ctx context.Context) error {
	return s.orchestrator.Train(ctx)
}
