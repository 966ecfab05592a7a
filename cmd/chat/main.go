// Command chat runs the reply engine as an interactive console session.
package main

import (
	"bufio"
	"chat-engine/ai"
	"chat-engine/analysis"
	"chat-engine/contract"
	"chat-engine/domain"
	"chat-engine/internal"
	"chat-engine/repositories"
	"chat-engine/runtime"
	"chat-engine/services"
	"chat-engine/storage"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	apperrors "chat-engine/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	room := flag.String("room", "console", "Room to talk in")
	user := flag.String("user", "you", "User name")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Optional archive (BadgerDB)
	var archive contract.MessageArchive
	if config.BadgerFilepath != "" {
		db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		archive = repositories.NewArchiveRepository(db, logger)
	}

	// 3. Engine
	analyzer, err := analysis.NewDefaultAnalyzer(logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("analyzer init failed: %w", err)
	}
	orchestrator := runtime.NewOrchestrator(logger,
		repositories.NewConversationStore(config.HistoryCapacity),
		runtime.NewTrainingDataLoader(os.DirFS(config.DataDir), logger),
		storage.NewModelFile(config.ModelPath, logger),
		analyzer, archive, config.Options())
	if err := orchestrator.LoadModel(ctx); err != nil {
		if !errors.Is(err, apperrors.ErrTraining) {
			return exitRuntime, err
		}
		logger.Warn("Starting without training examples", "error", err)
	}

	registry := runtime.NewRegistryWithContext(ctx)
	dispatcher := runtime.NewDispatcher(logger, registry,
		config.TypingDelayMin, config.TypingDelayMax, ai.NewChooser(config.Seed()))
	service := services.NewChatService(logger, orchestrator, registry, dispatcher)

	// 4. Console session
	sessionID := uuid.NewString()
	roomID := domain.RoomID(*room)
	out := newConsole(os.Stdout)
	service.Join(sessionID, roomID, out)
	defer service.Leave(sessionID, roomID)

	out.Banner(roomID)
	lines := readLines(os.Stdin)
	for {
		out.Prompt(*user)
		select {
		case <-ctx.Done():
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			quit, err := handle(ctx, service, out, sessionID, *user, roomID, line)
			if err != nil {
				return exitRuntime, err
			}
			if quit {
				return exitOK, nil
			}
		}
	}
}

func handle(ctx context.Context, service services.IChatService, out *console,
	sessionID, user string, roomID domain.RoomID, line string) (bool, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false, nil
	case "/quit":
		return true, nil
	case "/history":
		out.History(service.History(roomID))
		return false, nil
	case "/clear":
		service.Clear(roomID)
		out.Info("History cleared")
		return false, nil
	case "/train":
		if err := service.Retrain(ctx); err != nil && !errors.Is(err, apperrors.ErrTraining) {
			return false, err
		}
		out.Info("Model retrained")
		return false, nil
	}

	_, err := service.Send(ctx, domain.SendMessageCommand{
		Room:      roomID,
		SessionID: sessionID,
		UserID:    user,
		Text:      line,
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, apperrors.ErrSessionClosed) {
		out.Error(err)
	}
	return false, nil
}

func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
