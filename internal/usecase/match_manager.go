package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type mover interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

// MatchManager drives a game between two movers.
type MatchManager struct {
	logger *slog.Logger

	playerX mover
	playerO mover
}

func NewMatchManager(logger *slog.Logger, playerX, playerO mover) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),

		playerX: playerX,
		playerO: playerO,
	}
}

// Play starts from start, applies the scripted opening and lets the movers finish the game.
func (that *MatchManager) Play(ctx context.Context, start entity.Board, opening []entity.Move) (*tictactoe.Game, error) {
	log := that.logger.With("method", "Play")

	game := tictactoe.NewGameFromBoard(start)

	for _, move := range opening {
		mark := game.Turn()
		if err := game.MakeTurn(mark, move); err != nil {
			return game, fmt.Errorf("failed opening move %s: %w", move, err)
		}

		log.Info("opening move", "mark", mark.String(), "move", move.String())
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("match interrupted: %w", err)
		}

		mark := game.Turn()

		move, err := that.moverFor(mark).MakeTurn(game)
		if err != nil {
			return game, fmt.Errorf("failed make turn for %s: %w", mark, err)
		}

		log.Info("turn", "mark", mark.String(), "move", move.String(), "ply", len(game.History))
	}

	log.Info("match finished",
		"winner", game.Winner.String(),
		"score", int(game.Score()),
		"moves", len(game.History),
	)

	return game, nil
}

func (that *MatchManager) moverFor(mark entity.Mark) mover {
	if mark == entity.PlayerO {
		return that.playerO
	}

	return that.playerX
}
