package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

func TestRun(t *testing.T) {
	ctx, st := suite.New(t)
	logger := st.Logger

	t.Run("Empty board draws", func(t *testing.T) {
		game, err := run(ctx, logger, &config.Config{})

		require.NoError(t, err)
		assert.Equal(t, tictactoe.ScoreDraw, game.Score())
	})

	t.Run("Configured position is won at once", func(t *testing.T) {
		// Given: X to move with an open top row
		conf := &config.Config{Match: config.Match{Board: "XX./OO./..."}}

		// When: running the match
		game, err := run(ctx, logger, conf)

		// Then: X completes the row
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, []entity.Move{{Row: 0, Col: 2}}, game.History)
	})

	t.Run("Illegal opening", func(t *testing.T) {
		conf := &config.Config{Match: config.Match{Opening: []string{"0,0", "0,0"}}}

		_, err := run(ctx, logger, conf)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Bad config", func(t *testing.T) {
		conf := &config.Config{Match: config.Match{Board: "nope"}}

		_, err := run(ctx, logger, conf)

		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}
