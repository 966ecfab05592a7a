package runtime

import (
	"chat-engine/ai"
	"chat-engine/contract"
	"chat-engine/domain"
	"chat-engine/domain/event"
	"chat-engine/errors"
	"context"
	"log/slog"
	"time"
)

const (
	DefaultTypingDelayMin = time.Second
	DefaultTypingDelayMax = 3 * time.Second
)

// Dispatcher delivers a reply to the sinks of a room after a simulated typing delay.
type Dispatcher struct {
	log      *slog.Logger
	registry contract.IRegistry
	minDelay time.Duration
	maxDelay time.Duration
	choose   ai.Chooser
	now      func() time.Time
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, minDelay, maxDelay time.Duration, choose ai.Chooser) *Dispatcher {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	if choose == nil {
		choose = ai.NewChooser(nil)
	}
	return &Dispatcher{
		log:      log,
		registry: registry,
		minDelay: minDelay,
		maxDelay: maxDelay,
		choose:   choose,
		now:      time.Now,
	}
}

// Deliver emits TypingStarted, waits the typing delay, then emits TypingStopped
// and ReplyReady. Nothing more is emitted once ctx is done or the sender's
// session has ended.
func (d *Dispatcher) Deliver(ctx context.Context, sessionID string, roomID domain.RoomID, reply domain.Reply) error {
	sessionCtx, ok := d.registry.SessionContext(sessionID)
	if !ok {
		return errors.ErrSessionClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sessionCtx, cancel)
	defer stop()

	d.broadcast(ctx, event.TypingStarted{Room: roomID, At: d.now()})

	timer := time.NewTimer(d.delay())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		d.log.Debug("Delivery abandoned", "room", roomID, "session", sessionID)
		if sessionCtx.Err() != nil {
			return errors.ErrSessionClosed
		}
		return ctx.Err()
	case <-timer.C:
	}

	d.broadcast(ctx, event.TypingStopped{Room: roomID, At: d.now()})
	d.broadcast(ctx, event.ReplyReady{Room: roomID, Reply: reply, At: d.now()})
	return nil
}

func (d *Dispatcher) delay() time.Duration {
	span := d.maxDelay - d.minDelay
	if span <= 0 {
		return d.minDelay
	}
	return d.minDelay + time.Duration(d.choose(int(span)+1))
}

// broadcast never stops on a failing sink.
func (d *Dispatcher) broadcast(ctx context.Context, e event.DomainEvent) {
	for _, sink := range d.registry.GetSinksForRoom(e.RoomID()) {
		if err := sink.Consume(ctx, e); err != nil {
			d.log.Warn("Sink rejected event", "room", e.RoomID(), "error", err)
		}
	}
}
