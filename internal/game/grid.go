// internal/game/grid.go
//
// Row/column coordinates shared by the board games.

package game

// Point is a (row, col) grid coordinate; (0,0) is the top-left cell.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether p lies inside a rows x cols grid.
func (p Point) InBounds(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Neighbors returns the in-bounds Moore neighborhood of p (up to 8 cells).
func (p Point) Neighbors(rows, cols int) []Point {
	out := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Point{Row: p.Row + dr, Col: p.Col + dc}
			if n.InBounds(rows, cols) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
