// Package main is the entry point for the typetrain practice service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/dshills/typetrain/internal/auth"
	"github.com/dshills/typetrain/internal/config"
	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
	"github.com/dshills/typetrain/internal/logging"
	"github.com/dshills/typetrain/internal/studybook"
	"github.com/dshills/typetrain/internal/typing"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Local .env files are optional.
	_ = godotenv.Load()

	var (
		configPath  string
		busDebug    bool
		showVersion bool
	)
	pflag.StringVarP(&configPath, "config", "c", "typetrain.toml", "path to configuration file")
	pflag.BoolVarP(&busDebug, "debug", "d", false, "enable event bus debug logging")
	pflag.BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("typetrain %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.Setup(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := event.New(
		event.WithLogger(logger),
		event.WithDebug(cfg.Bus.Debug || busDebug),
	)

	// Audit every emission at debug level.
	audit := &event.Middleware{
		After: func(name string, _ any, e *event.Event) {
			logger.Debug("event dispatched", "event", name, "cancelled", e.IsCancelled())
		},
	}
	bus.AddMiddleware(audit)
	defer bus.RemoveMiddleware(audit)

	verifier := auth.NewMemoryVerifier()
	accounts := auth.NewService(bus, verifier)
	books := studybook.NewService(bus, studybook.NewMemoryRepository())
	sessions := typing.NewService(bus)
	stats := typing.NewAggregator(bus)
	defer stats.Close()

	if err := demo(ctx, cfg, accounts, verifier, books, sessions, stats, bus); err != nil {
		logger.Error("demo failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// demo drives one practice round end to end: account, study book, typing
// session, and the resulting statistics.
func demo(
	ctx context.Context,
	cfg config.Config,
	accounts *auth.Service,
	verifier *auth.MemoryVerifier,
	books *studybook.Service,
	sessions *typing.Service,
	stats *typing.Aggregator,
	bus *event.Bus,
) error {
	registered, err := accounts.Register("demo")
	if err != nil {
		return err
	}
	verifier.Add(registered.LoginID, "demo-password", registered.UserID)

	login, err := accounts.Login(registered.LoginID, "demo-password")
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (streak: %d days)\n", login.LoginID, login.ConsecutiveDays)

	book, err := books.Create(login.UserID, "go", "the quick brown fox jumps over the lazy dog", "pangram drill")
	if err != nil {
		return err
	}

	session, err := sessions.Start(login.UserID, book.ID, book.Question)
	if err != nil {
		return err
	}

	// The typed text arrives a moment later; block on the completion event
	// the way a caller waiting on session results would.
	completeErr := make(chan error, 1)
	timer := time.AfterFunc(10*time.Millisecond, func() {
		_, err := sessions.Complete(session.ID, "the quick brown fox jumps over the lazy dig")
		completeErr <- err
	})
	defer timer.Stop()

	waitTimeout := time.Duration(cfg.Typing.WaitTimeoutSec) * time.Second
	evt, err := bus.WaitFor(ctx, events.TypingCompleted, waitTimeout)
	if err != nil {
		select {
		case cerr := <-completeErr:
			if cerr != nil {
				return cerr
			}
		default:
		}
		return err
	}
	if cerr := <-completeErr; cerr != nil {
		return cerr
	}

	result := evt.Data.(events.TypingResult)
	fmt.Printf("session scored %d/%d (%.1f%%)\n", result.CorrectChars, result.TotalChars, result.Accuracy)

	if user, ok := stats.Stats(login.UserID); ok {
		fmt.Printf("best accuracy so far: %.1f%%\n", user.BestAccuracy)
	}

	accounts.Logout(login.UserID)

	busStats := bus.Statistics()
	fmt.Printf("bus: %d events emitted, %d handlers invoked\n", busStats.EventsEmitted, busStats.HandlersInvoked)
	return nil
}
