// internal/hub/registry.go
//
// Construct builds a fresh engine for a game kind. Randomness is injected so
// callers (and tests) control mine layouts, shuffles, rolls and picks.

package hub

import (
	"fmt"

	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/game/chess"
	"github.com/akj2003/GamingHub/internal/game/hangman"
	"github.com/akj2003/GamingHub/internal/game/ludo"
	"github.com/akj2003/GamingHub/internal/game/memory"
	"github.com/akj2003/GamingHub/internal/game/minesweeper"
	"github.com/akj2003/GamingHub/internal/game/quiz"
	"github.com/akj2003/GamingHub/internal/game/sudoku"
	"github.com/akj2003/GamingHub/internal/game/tictactoe"
)

// Registry carries construction settings that do not belong in game.Config.
type Registry struct {
	// Words configures the hangman daily word (salt, clock).
	Words hangman.Source
}

// Construct returns a new engine of kind, or an error wrapping
// game.ErrUnknownKind / game.ErrInvalidConfig.
func (reg Registry) Construct(kind game.Kind, cfg game.Config, r game.Rand) (game.Engine, error) {
	switch kind {
	case game.KindTicTacToe:
		return tictactoe.New(), nil
	case game.KindChess:
		return chess.New(), nil
	case game.KindSudoku:
		return engine(sudoku.New(cfg))
	case game.KindLudo:
		return engine(ludo.New(cfg, r))
	case game.KindMinesweeper:
		return engine(minesweeper.New(cfg, r))
	case game.KindMemory:
		return engine(memory.New(cfg, r))
	case game.KindHangman:
		return engine(hangman.NewWithSource(cfg, r, reg.Words))
	case game.KindQuiz:
		return quiz.New(cfg, r), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, game.ErrUnknownKind)
	}
}

// Construct uses the zero Registry.
func Construct(kind game.Kind, cfg game.Config, r game.Rand) (game.Engine, error) {
	return Registry{}.Construct(kind, cfg, r)
}

// engine keeps a failed constructor from yielding a non-nil interface.
func engine[E game.Engine](e E, err error) (game.Engine, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
