package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Searcher *minimax.Searcher
	Bot      service.BotService
}

// New builds the solver stack for a test. Set TEST_LOG=1 to see the logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var output io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		output = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: slog.LevelDebug}))
	searcher := minimax.New(logger)

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Searcher: searcher,
		Bot:      service.NewBotService(logger, searcher),
	}
}
