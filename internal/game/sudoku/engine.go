// internal/game/sudoku/engine.go
//
// Sudoku engine.
// Actions:
//   - "select":     toggle the selection on a non-given cell.
//   - "digit":      write Digit into the selected cell.
//   - "place":      write Digit at (Row, Col) directly.
//   - "difficulty": switch puzzle; resets board, selection and completion.

package sudoku

import (
	"fmt"

	"github.com/akj2003/GamingHub/internal/game"
)

// Game adapts State to game.Engine.
type Game struct {
	state    State
	selected *Square
}

// New starts the puzzle for the configured difficulty (easy by default).
func New(cfg game.Config) (*Game, error) {
	d := Difficulty(cfg.Difficulty)
	if d == "" {
		d = Easy
	}
	s, ok := NewState(d)
	if !ok {
		return nil, fmt.Errorf("sudoku difficulty %q: %w", cfg.Difficulty, game.ErrInvalidConfig)
	}
	return &Game{state: s}, nil
}

// State returns the current state by value.
func (g *Game) State() State { return g.state }

func (g *Game) Kind() game.Kind { return game.KindSudoku }

func (g *Game) Apply(a game.Action) game.Result {
	switch a.Type {
	case game.ActDifficulty:
		s, ok := NewState(Difficulty(a.Choice))
		if !ok {
			return game.Ignore()
		}
		g.state, g.selected = s, nil
		return game.Accept("")
	case game.ActSelect:
		return g.toggle(Square{Row: a.Row, Col: a.Col})
	case game.ActDigit:
		if g.selected == nil {
			return game.Ignore()
		}
		return g.place(*g.selected, a.Digit)
	case game.ActPlace:
		return g.place(Square{Row: a.Row, Col: a.Col}, a.Digit)
	default:
		return game.Ignore()
	}
}

func (g *Game) toggle(sq Square) game.Result {
	if g.state.Completed || !sq.InBounds(Size, Size) || g.state.Board[sq.Row][sq.Col].Given {
		return game.Ignore()
	}
	if g.selected != nil && *g.selected == sq {
		g.selected = nil
	} else {
		g.selected = &sq
	}
	return game.Accept("")
}

func (g *Game) place(sq Square, digit int) game.Result {
	next, ok := PlaceDigit(g.state, sq.Row, sq.Col, digit)
	if !ok {
		return game.Ignore()
	}
	g.state = next
	if next.Completed {
		g.selected = nil
	}
	return game.Accept("")
}

func (g *Game) Terminal() game.Terminal {
	if g.state.Completed {
		return game.Terminal{Status: game.StatusWon}
	}
	return game.Ongoing
}

// Reset restarts the current difficulty.
func (g *Game) Reset() {
	g.state, _ = NewState(g.state.Difficulty)
	g.selected = nil
}

// View is the player-facing snapshot.
type View struct {
	Board      Board      `json:"board"`
	Difficulty Difficulty `json:"difficulty"`
	Completed  bool       `json:"completed"`
	Selected   *Square    `json:"selected,omitempty"`
	Conflicts  []Square   `json:"conflicts,omitempty"`
}

func (g *Game) View() any {
	v := View{
		Board:      g.state.Board,
		Difficulty: g.state.Difficulty,
		Completed:  g.state.Completed,
		Conflicts:  Conflicts(g.state.Board),
	}
	if g.selected != nil {
		sel := *g.selected
		v.Selected = &sel
	}
	return v
}
