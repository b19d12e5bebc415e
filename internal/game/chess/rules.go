package chess

import "github.com/akj2003/GamingHub/internal/game"

// IsOwnPiece reports whether p is present and belongs to turn.
func IsOwnPiece(p Piece, turn Color) bool {
	return !p.Empty() && p.Color == turn
}

// direction is the row delta of a forward pawn step.
func direction(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// ValidMove reports whether the piece on from may move to to on b for turn.
// It checks ownership and piece geometry only; it does not apply the move.
func ValidMove(b Board, from, to Square, turn Color) bool {
	if !from.InBounds(Size, Size) || !to.InBounds(Size, Size) || from == to {
		return false
	}
	piece, target := b.At(from), b.At(to)
	if !IsOwnPiece(piece, turn) || IsOwnPiece(target, turn) {
		return false
	}

	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch piece.Kind {
	case Pawn:
		if dr != direction(piece.Color) {
			return false
		}
		if dc == 0 {
			return target.Empty()
		}
		return game.Abs(dc) == 1 && !target.Empty()
	case King:
		return game.Abs(dr) <= 1 && game.Abs(dc) <= 1
	case Rook:
		if dr != 0 && dc != 0 {
			return false
		}
		return pathClear(b, from, to)
	default:
		return false
	}
}

// pathClear reports whether every square strictly between from and to,
// which share a row or column, is empty.
func pathClear(b Board, from, to Square) bool {
	stepR, stepC := sign(to.Row-from.Row), sign(to.Col-from.Col)
	r, c := from.Row+stepR, from.Col+stepC
	for r != to.Row || c != to.Col {
		if !b[r][c].Empty() {
			return false
		}
		r += stepR
		c += stepC
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// HasKing reports whether color still has a king on b.
func HasKing(b Board, color Color) bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c].Kind == King && b[r][c].Color == color {
				return true
			}
		}
	}
	return false
}

// AttemptMove validates and applies a move for s.Turn. On success the piece
// relocates, the source empties, and either the mover wins (opposing king
// captured) or the turn passes. ok is false for illegal moves and once the
// game is over; s is then returned unchanged.
func AttemptMove(s State, from, to Square) (next State, ok bool) {
	if s.Winner != "" || !ValidMove(s.Board, from, to, s.Turn) {
		return s, false
	}
	next = s
	next.Board[to.Row][to.Col] = s.Board.At(from)
	next.Board[from.Row][from.Col] = Piece{}
	if !HasKing(next.Board, s.Turn.Opponent()) {
		next.Winner = s.Turn
		return next, true
	}
	next.Turn = s.Turn.Opponent()
	return next, true
}
