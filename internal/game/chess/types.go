// internal/game/chess/types.go
//
// Board and state types for 4x4 mini-chess.
//   - Pieces: pawn, king, rook for each color.
//   - White moves first and its pawns advance toward row 0.
//   - Capturing the opposing king wins immediately (no check/checkmate).

package chess

import "github.com/akj2003/GamingHub/internal/game"

// Size is the board edge length.
const Size = 4

// Color identifies a side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind is the movement class of a piece.
type PieceKind string

const (
	Pawn PieceKind = "pawn"
	King PieceKind = "king"
	Rook PieceKind = "rook"
)

// Piece is a tagged piece. The zero value is an empty square.
type Piece struct {
	Color Color     `json:"color,omitempty"`
	Kind  PieceKind `json:"kind,omitempty"`
}

// Empty reports whether the square holds no piece.
func (p Piece) Empty() bool { return p.Kind == "" }

// Square is a board coordinate.
type Square = game.Point

// Board is the 4x4 grid, row 0 at the top (Black's home row).
type Board [Size][Size]Piece

// At returns the piece on sq. sq must be in bounds.
func (b Board) At(sq Square) Piece { return b[sq.Row][sq.Col] }

// State is the pure game state.
type State struct {
	Board  Board
	Turn   Color
	Winner Color // empty while the game is ongoing
}

// InitialBoard returns the fixed starting layout:
//
//	row 0:  bR  .   .  bK
//	row 1:  .  bP  bP   .
//	row 2:  .  wP  wP   .
//	row 3:  wK  .   .  wR
func InitialBoard() Board {
	var b Board
	b[0][0] = Piece{Black, Rook}
	b[0][3] = Piece{Black, King}
	b[1][1] = Piece{Black, Pawn}
	b[1][2] = Piece{Black, Pawn}
	b[2][1] = Piece{White, Pawn}
	b[2][2] = Piece{White, Pawn}
	b[3][0] = Piece{White, King}
	b[3][3] = Piece{White, Rook}
	return b
}

// NewState returns the starting position with White to move.
func NewState() State {
	return State{Board: InitialBoard(), Turn: White}
}
