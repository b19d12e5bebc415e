// internal/game/minesweeper/board.go
//
// Grid model for Minesweeper: mine placement, adjacency counts, reveal with
// flood fill, and flag toggling. Boards are mutated only through Clone'd
// copies by the engine.

package minesweeper

import (
	"github.com/akj2003/GamingHub/internal/game"
)

// Cell is one square of the grid.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mines in the Moore neighborhood, 0..8
}

// Board holds the cells of a rows x cols grid.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// Point is a grid coordinate.
type Point = game.Point

// NewBoard places mines uniformly at random and precomputes adjacency counts.
// Placement shuffles the list of coordinates and mines the first `mines`
// entries, so no cell is mined twice and no retry loop is needed.
// Callers guarantee 0 <= mines < rows*cols.
func NewBoard(rows, cols, mines int, r game.Rand) *Board {
	b := emptyBoard(rows, cols)
	coords := make([]Point, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			coords = append(coords, Point{Row: row, Col: col})
		}
	}
	game.Shuffle(r, coords)
	for _, p := range coords[:mines] {
		b.Cells[p.Row][p.Col].Mine = true
	}
	b.countAdjacent()
	return b
}

// NewBoardWithMines builds a board with mines at the given points.
func NewBoardWithMines(rows, cols int, mines []Point) *Board {
	b := emptyBoard(rows, cols)
	for _, p := range mines {
		if p.InBounds(rows, cols) {
			b.Cells[p.Row][p.Col].Mine = true
		}
	}
	b.countAdjacent()
	return b
}

func emptyBoard(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}
}

// countAdjacent fills Adjacent for every cell.
func (b *Board) countAdjacent() {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			n := 0
			for _, nb := range (Point{Row: row, Col: col}).Neighbors(b.Rows, b.Cols) {
				if b.Cells[nb.Row][nb.Col].Mine {
					n++
				}
			}
			b.Cells[row][col].Adjacent = n
		}
	}
}

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	out := &Board{Rows: b.Rows, Cols: b.Cols, Cells: make([][]Cell, b.Rows)}
	for i := range b.Cells {
		out.Cells[i] = append([]Cell(nil), b.Cells[i]...)
	}
	return out
}

// InBounds reports whether p is on the board.
func (b *Board) InBounds(p Point) bool { return p.InBounds(b.Rows, b.Cols) }

// Reveal opens the cell at p. It is a no-op (changed false) when p is out of
// bounds, already revealed or flagged. Opening a safe cell with no adjacent
// mines opens its neighbors too, transitively; this uses an explicit stack
// and only pushes unrevealed, unflagged cells, so it terminates on any grid.
// hitMine reports whether the opened cell was a mine.
func (b *Board) Reveal(p Point) (changed, hitMine bool) {
	if !b.InBounds(p) {
		return false, false
	}
	start := &b.Cells[p.Row][p.Col]
	if start.Revealed || start.Flagged {
		return false, false
	}
	start.Revealed = true
	if start.Mine {
		return true, true
	}

	stack := []Point{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Cells[cur.Row][cur.Col].Adjacent != 0 {
			continue
		}
		for _, nb := range cur.Neighbors(b.Rows, b.Cols) {
			c := &b.Cells[nb.Row][nb.Col]
			if c.Revealed || c.Flagged || c.Mine {
				continue
			}
			c.Revealed = true
			stack = append(stack, nb)
		}
	}
	return true, false
}

// ToggleFlag flips the flag on an unrevealed cell. It is a no-op on revealed
// or out-of-bounds cells.
func (b *Board) ToggleFlag(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	c := &b.Cells[p.Row][p.Col]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// Flags counts flagged cells.
func (b *Board) Flags() int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Flagged {
				n++
			}
		}
	}
	return n
}

// Cleared reports whether every non-mine cell is revealed.
func (b *Board) Cleared() bool {
	for _, row := range b.Cells {
		for _, c := range row {
			if !c.Mine && !c.Revealed {
				return false
			}
		}
	}
	return true
}

// revealMines opens every mine, leaving flags as they are.
func (b *Board) revealMines() {
	for i := range b.Cells {
		for j := range b.Cells[i] {
			if b.Cells[i][j].Mine {
				b.Cells[i][j].Revealed = true
			}
		}
	}
}

// flagMines flags every mine.
func (b *Board) flagMines() {
	for i := range b.Cells {
		for j := range b.Cells[i] {
			if b.Cells[i][j].Mine {
				b.Cells[i][j].Flagged = true
			}
		}
	}
}
