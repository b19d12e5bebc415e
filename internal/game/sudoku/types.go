// internal/game/sudoku/types.go
//
// Board, puzzle and state types for 4x4 Sudoku.
//   - Values are 0 (empty) or 1..4.
//   - A given cell is pre-filled by the puzzle and never changes.
//   - Boxes are the four 2x2 quadrants.

package sudoku

import "github.com/akj2003/GamingHub/internal/game"

const (
	Size    = 4
	BoxSize = 2
)

// Difficulty selects one of the fixed puzzles.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the supported tiers.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Cell is one square of the grid.
type Cell struct {
	Value int  `json:"value"`
	Given bool `json:"given"`
}

// Board is the grid. Arrays copy on assignment.
type Board [Size][Size]Cell

// Grid is a plain value grid, used for puzzle definitions.
type Grid [Size][Size]int

// Square is a board coordinate.
type Square = game.Point

// State is the pure game state.
type State struct {
	Board      Board
	Difficulty Difficulty
	Completed  bool
}

// puzzles are the fixed starting grids; each has exactly one solution.
var puzzles = map[Difficulty]Grid{
	Easy: {
		{1, 2, 0, 4},
		{0, 4, 1, 0},
		{2, 0, 4, 3},
		{4, 3, 0, 1},
	},
	Medium: {
		{0, 2, 0, 4},
		{3, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 3, 2, 0},
	},
	Hard: {
		{0, 0, 0, 3},
		{0, 4, 0, 0},
		{0, 0, 3, 0},
		{1, 0, 0, 0},
	},
}

// Puzzle returns the starting grid for d.
func Puzzle(d Difficulty) (Grid, bool) {
	p, ok := puzzles[d]
	return p, ok
}

// NewState seeds a board from the puzzle for d, marking non-zero cells given.
func NewState(d Difficulty) (State, bool) {
	p, ok := puzzles[d]
	if !ok {
		return State{}, false
	}
	s := State{Difficulty: d}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			s.Board[r][c] = Cell{Value: p[r][c], Given: p[r][c] != 0}
		}
	}
	return s, true
}

// Values strips the given flags.
func (b Board) Values() Grid {
	var g Grid
	for r := range b {
		for c := range b[r] {
			g[r][c] = b[r][c].Value
		}
	}
	return g
}
