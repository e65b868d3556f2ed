package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Match     Match  `yaml:"match"`
}

// Match describes the position the bots start from.
type Match struct {
	// Board is an optional starting position, rows separated by "/" (e.g. "XX./OO./...").
	Board   string   `yaml:"board" env:"MATCH_BOARD"`
	Opening []string `yaml:"opening" env:"MATCH_OPENING" env-separator:";"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// StartBoard returns the configured starting position, or the empty board.
func (that *Match) StartBoard() (entity.Board, error) {
	if that.Board == "" {
		return tictactoe.InitialState(), nil
	}

	board, err := entity.ParseBoard(that.Board)
	if err != nil {
		return board, fmt.Errorf("failed to parse match board: %w", err)
	}

	// X always moves first, so it has as many marks as O or exactly one more.
	if diff := board.Count(entity.PlayerX) - board.Count(entity.PlayerO); diff != 0 && diff != 1 {
		return board, fmt.Errorf("%w: %d X marks against %d O marks", entity.ErrInvalidBoard,
			board.Count(entity.PlayerX), board.Count(entity.PlayerO))
	}

	return board, nil
}

func (that *Match) OpeningMoves() ([]entity.Move, error) {
	moves, err := entity.ParseMoves(that.Opening)
	if err != nil {
		return nil, fmt.Errorf("failed to parse match opening: %w", err)
	}

	return moves, nil
}
