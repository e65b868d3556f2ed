package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type searcher interface {
	BestMove(board entity.Board) (entity.Move, bool)
	Evaluate(board entity.Board) tictactoe.Score
}

type BotService interface {
	MakeTurn(game *tictactoe.Game) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	searcher searcher
}

func NewBotService(logger *slog.Logger, searcher searcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// MakeTurn plays the optimal move for whichever side is to move.
func (that *botService) MakeTurn(game *tictactoe.Game) (entity.Move, error) {
	if game.IsFinished() {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	move, ok := that.searcher.BestMove(game.Board)
	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	mark := game.Turn()
	if err := game.MakeTurn(mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn",
		"mark", mark.String(),
		"move", move.String(),
		"expected", int(that.searcher.Evaluate(game.Board)),
	)

	return move, nil
}
