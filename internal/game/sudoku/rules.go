package sudoku

// PlaceDigit writes digit (0 clears) into the cell at (row, col). Entry is not
// checked against row/column/box rules; wrong values are allowed until the
// board is complete. ok is false, and s is returned unchanged, when the cell
// is given, out of range, the digit is out of range, or the puzzle is solved.
func PlaceDigit(s State, row, col, digit int) (next State, ok bool) {
	if !(Square{Row: row, Col: col}).InBounds(Size, Size) || digit < 0 || digit > Size {
		return s, false
	}
	if s.Completed || s.Board[row][col].Given {
		return s, false
	}
	next = s
	next.Board[row][col].Value = digit
	next.Completed = IsSolved(next.Board)
	return next, true
}

// IsSolved reports whether every cell is filled and every row, column and box
// holds 1..Size exactly once. Givens never change, so for a puzzle with a
// unique solution this is the same as comparing against that solution.
func IsSolved(b Board) bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c].Value == 0 {
				return false
			}
		}
	}
	return len(Conflicts(b)) == 0
}

// units lists every row, column and box as coordinate groups.
var units = func() [][]Square {
	var out [][]Square
	for i := 0; i < Size; i++ {
		row := make([]Square, 0, Size)
		col := make([]Square, 0, Size)
		for j := 0; j < Size; j++ {
			row = append(row, Square{Row: i, Col: j})
			col = append(col, Square{Row: j, Col: i})
		}
		out = append(out, row, col)
	}
	for br := 0; br < Size; br += BoxSize {
		for bc := 0; bc < Size; bc += BoxSize {
			box := make([]Square, 0, Size)
			for r := br; r < br+BoxSize; r++ {
				for c := bc; c < bc+BoxSize; c++ {
					box = append(box, Square{Row: r, Col: c})
				}
			}
			out = append(out, box)
		}
	}
	return out
}()

// Conflicts returns the filled cells whose value repeats within a row,
// column or box, in row-major order.
func Conflicts(b Board) []Square {
	var bad [Size][Size]bool
	for _, u := range units {
		seen := map[int]Square{}
		for _, sq := range u {
			v := b[sq.Row][sq.Col].Value
			if v == 0 {
				continue
			}
			if prev, dup := seen[v]; dup {
				bad[prev.Row][prev.Col] = true
				bad[sq.Row][sq.Col] = true
				continue
			}
			seen[v] = sq
		}
	}
	var out []Square
	for r := range bad {
		for c := range bad[r] {
			if bad[r][c] {
				out = append(out, Square{Row: r, Col: c})
			}
		}
	}
	return out
}
