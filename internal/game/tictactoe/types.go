// internal/game/tictactoe/types.go
//
// Board and state types for Tic-Tac-Toe.

package tictactoe

// Mark is the content of one cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Board is the 3x3 grid in row-major order. Being an array, it is copied on
// assignment, so a State can be handed out without aliasing.
type Board [9]Mark

// State is the pure game state.
type State struct {
	Board   Board
	XIsNext bool
	Winner  Mark // Empty while nobody has won
	Draw    bool
}

// NewState returns an empty board with X to move.
func NewState() State {
	return State{XIsNext: true}
}

// Next returns the mark of the player to move.
func (s State) Next() Mark {
	if s.XIsNext {
		return X
	}
	return O
}

// Over reports whether the game is won or drawn.
func (s State) Over() bool { return s.Winner != Empty || s.Draw }
