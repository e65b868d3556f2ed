package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := run(ctx, logger, conf); err != nil {
		return err
	}

	return nil
}

// run wires the solver, the bot and the match and plays one game.
func run(ctx context.Context, logger *slog.Logger, conf *config.Config) (*tictactoe.Game, error) {
	log := logger.With("component", "app")

	start, err := conf.Match.StartBoard()
	if err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	opening, err := conf.Match.OpeningMoves()
	if err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	searcher := minimax.New(logger)
	bot := service.NewBotService(logger, searcher)
	match := usecase.NewMatchManager(logger, bot, bot)

	log.Info("Starting match",
		"board", start.String(),
		"opening", len(opening),
		"value", int(searcher.Evaluate(start)),
	)

	game, err := match.Play(ctx, start, opening)
	if err != nil {
		return game, fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match result",
		"board", game.Board.String(),
		"winner", game.Winner.String(),
		"score", int(game.Score()),
	)

	return game, nil
}
