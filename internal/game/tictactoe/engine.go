// internal/game/tictactoe/engine.go
//
// Tic-Tac-Toe engine.
// Responsibilities:
//   - Place the current player's mark on an empty cell.
//   - Detect a winner over the 8 lines (3 rows, 3 columns, 2 diagonals).
//   - Detect a draw (full board, no line).
//   - Alternate turns only after an accepted, non-winning move.
//
// Clicks on occupied cells, out-of-range indices and any click after the game
// is over are ignored silently.

package tictactoe

import (
	"github.com/akj2003/GamingHub/internal/game"
)

// lines holds every winning triple, rows first, then columns, then diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// DetectWinner returns the mark filling any complete line, or Empty.
// The first matching line in scan order wins.
func DetectWinner(b Board) Mark {
	for _, l := range lines {
		a := b[l[0]]
		if a != Empty && a == b[l[1]] && a == b[l[2]] {
			return a
		}
	}
	return Empty
}

// IsDraw reports a full board without a winning line.
func IsDraw(b Board) bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return DetectWinner(b) == Empty
}

// ApplyMove places the current player's mark at index and returns the next
// state. ok is false (and s is returned unchanged) when the move is rejected.
func ApplyMove(s State, index int) (next State, ok bool) {
	if index < 0 || index >= len(s.Board) || s.Board[index] != Empty || s.Over() {
		return s, false
	}
	next = s
	next.Board[index] = s.Next()
	next.Winner = DetectWinner(next.Board)
	if next.Winner == Empty {
		next.Draw = IsDraw(next.Board)
		if !next.Draw {
			next.XIsNext = !s.XIsNext
		}
	}
	return next, true
}

// Game adapts State to game.Engine.
type Game struct {
	state State
}

// New starts a fresh game.
func New() *Game {
	return &Game{state: NewState()}
}

// State returns the current state by value.
func (g *Game) State() State { return g.state }

func (g *Game) Kind() game.Kind { return game.KindTicTacToe }

func (g *Game) Apply(a game.Action) game.Result {
	if a.Type != game.ActPlace {
		return game.Ignore()
	}
	next, ok := ApplyMove(g.state, a.Index)
	if !ok {
		return game.Ignore()
	}
	g.state = next
	return game.Accept("")
}

func (g *Game) Terminal() game.Terminal {
	switch {
	case g.state.Winner != Empty:
		return game.Terminal{Status: game.StatusWon, Winner: string(g.state.Winner)}
	case g.state.Draw:
		return game.Terminal{Status: game.StatusDraw}
	default:
		return game.Ongoing
	}
}

func (g *Game) Reset() { g.state = NewState() }

// View is the player-facing snapshot.
type View struct {
	Board  [9]string `json:"board"`
	Next   string    `json:"next"`
	Winner string    `json:"winner,omitempty"`
	Draw   bool      `json:"draw"`
}

func (g *Game) View() any {
	v := View{Next: string(g.state.Next()), Winner: string(g.state.Winner), Draw: g.state.Draw}
	for i, m := range g.state.Board {
		v.Board[i] = string(m)
	}
	return v
}
