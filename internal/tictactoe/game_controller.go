package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game tracks a single match on top of the pure rules.
type Game struct {
	Board   entity.Board  `json:"board"`
	Winner  entity.Mark   `json:"winner"`
	Status  string        `json:"status"`
	History []entity.Move `json:"history"`
}

func NewGame() *Game {
	return NewGameFromBoard(InitialState())
}

// NewGameFromBoard starts tracking an already reached position.
func NewGameFromBoard(board entity.Board) *Game {
	game := &Game{Board: board}
	game.updateGameStatus()

	return game
}

// MakeTurn plays move for player.
func (that *Game) MakeTurn(player entity.Mark, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn() != player {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn())
	}

	board, err := Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board
	that.History = append(that.History, move)
	that.updateGameStatus()

	return nil
}

// Turn returns the side to move, or entity.Empty once the game is over.
func (that *Game) Turn() entity.Mark {
	if that.IsFinished() {
		return entity.Empty
	}

	return Player(that.Board)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) Score() Score {
	return Utility(that.Board)
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	if Terminal(that.Board) {
		that.Status = StatusFinished
		that.Winner = Winner(that.Board)
		return
	}

	that.Status = StatusOngoing
}
