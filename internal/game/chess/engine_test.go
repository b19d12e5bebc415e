package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akj2003/GamingHub/internal/game"
)

func sq(r, c int) Square { return Square{Row: r, Col: c} }

// rookBoard has a lone white rook on (0,0) with both kings tucked away.
func rookBoard() Board {
	var b Board
	b[0][0] = Piece{White, Rook}
	b[3][3] = Piece{White, King}
	b[2][2] = Piece{Black, King}
	return b
}

func click(g *Game, r, c int) game.Result {
	return g.Apply(game.Action{Type: game.ActSelect, Row: r, Col: c})
}

func TestInitialLayout(t *testing.T) {
	s := NewState()
	assert.Equal(t, White, s.Turn)
	assert.True(t, HasKing(s.Board, White))
	assert.True(t, HasKing(s.Board, Black))

	counts := map[Piece]int{}
	for _, row := range s.Board {
		for _, p := range row {
			if !p.Empty() {
				counts[p]++
			}
		}
	}
	for _, c := range []Color{White, Black} {
		assert.Equal(t, 1, counts[Piece{c, King}])
		assert.Equal(t, 1, counts[Piece{c, Rook}])
		assert.Equal(t, 2, counts[Piece{c, Pawn}])
	}
}

func TestRookSlidesAlongOpenLines(t *testing.T) {
	b := rookBoard()
	assert.True(t, ValidMove(b, sq(0, 0), sq(0, 3), White))
	assert.True(t, ValidMove(b, sq(0, 0), sq(3, 0), White))
	assert.False(t, ValidMove(b, sq(0, 0), sq(1, 1), White), "diagonal")
}

func TestRookBlockedAndCaptures(t *testing.T) {
	b := rookBoard()
	b[0][2] = Piece{Black, Pawn}
	assert.False(t, ValidMove(b, sq(0, 0), sq(0, 3), White), "cannot pass a blocker")
	assert.True(t, ValidMove(b, sq(0, 0), sq(0, 2), White), "captures the blocker")

	next, ok := AttemptMove(State{Board: b, Turn: White}, sq(0, 0), sq(0, 2))
	require.True(t, ok)
	assert.Equal(t, Piece{White, Rook}, next.Board[0][2])
	assert.True(t, next.Board[0][0].Empty())
	assert.Equal(t, Black, next.Turn)

	b[0][2] = Piece{White, Pawn}
	assert.False(t, ValidMove(b, sq(0, 0), sq(0, 2), White), "own piece")
}

func TestPawnMoves(t *testing.T) {
	var b Board
	b[2][1] = Piece{White, Pawn}
	b[1][2] = Piece{Black, Pawn}
	b[3][3] = Piece{White, King}
	b[0][3] = Piece{Black, King}

	assert.True(t, ValidMove(b, sq(2, 1), sq(1, 1), White), "one step forward")
	assert.False(t, ValidMove(b, sq(2, 1), sq(0, 1), White), "no double step")
	assert.False(t, ValidMove(b, sq(2, 1), sq(3, 1), White), "no backward step")
	assert.False(t, ValidMove(b, sq(2, 1), sq(1, 0), White), "diagonal needs a capture")
	assert.True(t, ValidMove(b, sq(2, 1), sq(1, 2), White), "diagonal capture")

	assert.True(t, ValidMove(b, sq(1, 2), sq(2, 2), Black), "black moves down")
	assert.True(t, ValidMove(b, sq(1, 2), sq(2, 1), Black), "black captures diagonally")

	b[1][1] = Piece{Black, Rook}
	assert.False(t, ValidMove(b, sq(2, 1), sq(1, 1), White), "forward blocked")
}

func TestKingMoves(t *testing.T) {
	var b Board
	b[1][1] = Piece{White, King}
	b[3][3] = Piece{Black, King}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			to := sq(1+dr, 1+dc)
			assert.Equal(t, dr != 0 || dc != 0, ValidMove(b, sq(1, 1), to, White), "to %v", to)
		}
	}
	assert.False(t, ValidMove(b, sq(1, 1), sq(3, 1), White))
}

func TestUnknownPieceKindInvalid(t *testing.T) {
	var b Board
	b[1][1] = Piece{White, PieceKind("knight")}
	assert.False(t, ValidMove(b, sq(1, 1), sq(3, 2), White))
}

func TestWrongTurnAndOutOfBounds(t *testing.T) {
	s := NewState()
	assert.False(t, ValidMove(s.Board, sq(1, 1), sq(2, 1), White), "black piece on white's turn")
	assert.False(t, ValidMove(s.Board, sq(2, 1), sq(-1, 1), White))
	assert.False(t, ValidMove(s.Board, sq(4, 0), sq(3, 0), White))
}

func TestMoveOffBoardIsSilent(t *testing.T) {
	g := New()
	for _, a := range []game.Action{
		{Type: game.ActMove, Row: 9, Col: 9, ToRow: 10, ToCol: 10},
		{Type: game.ActMove, Row: 2, Col: 1, ToRow: -1, ToCol: 1},
		{Type: game.ActMove, Row: 4, Col: 0, ToRow: 2, ToCol: 0},
	} {
		assert.Equal(t, game.Ignore(), g.Apply(a), "%+v", a)
	}
	assert.Empty(t, g.View().(View).Message)
	assert.Equal(t, NewState(), g.State())
}

func TestKingCaptureWins(t *testing.T) {
	var b Board
	b[0][0] = Piece{White, Rook}
	b[0][3] = Piece{Black, King}
	b[3][3] = Piece{White, King}
	g := NewFromState(State{Board: b, Turn: White})

	res := g.Apply(game.Action{Type: game.ActMove, Row: 0, Col: 0, ToRow: 0, ToCol: 3})
	require.Equal(t, game.Accepted, res.Outcome)
	assert.Equal(t, game.Terminal{Status: game.StatusWon, Winner: "white"}, g.Terminal())
	assert.Equal(t, White, g.State().Turn, "turn does not pass after a win")

	before := g.State()
	assert.Equal(t, game.Ignored, click(g, 3, 3).Outcome)
	assert.Equal(t, before, g.State())
}

func TestSelectionProtocol(t *testing.T) {
	g := New()

	assert.Equal(t, game.Ignored, click(g, 1, 1).Outcome, "opponent piece")
	assert.Equal(t, game.Ignored, click(g, 1, 0).Outcome, "empty square")
	_, ok := g.Selected()
	assert.False(t, ok)

	require.Equal(t, game.Accepted, click(g, 2, 1).Outcome)
	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, sq(2, 1), sel)

	require.Equal(t, game.Accepted, click(g, 2, 1).Outcome, "re-click deselects")
	_, ok = g.Selected()
	assert.False(t, ok)

	require.Equal(t, game.Accepted, click(g, 2, 1).Outcome)
	res := click(g, 0, 1)
	assert.Equal(t, game.Rejected, res.Outcome)
	assert.Equal(t, MsgInvalidMove, res.Message)
	_, ok = g.Selected()
	assert.False(t, ok, "invalid attempt clears selection")
	assert.Equal(t, MsgInvalidMove, g.View().(View).Message)
	assert.Equal(t, White, g.State().Turn)

	require.Equal(t, game.Accepted, click(g, 2, 1).Outcome)
	require.Equal(t, game.Accepted, click(g, 1, 2).Outcome, "pawn captures diagonally")
	assert.Equal(t, Black, g.State().Turn)
	assert.Equal(t, Piece{White, Pawn}, g.State().Board[1][2])
	assert.Empty(t, g.View().(View).Message)
	_, ok = g.Selected()
	assert.False(t, ok)
}

func TestResetRestoresInitialPosition(t *testing.T) {
	g := New()
	click(g, 2, 1)
	click(g, 1, 2)
	click(g, 0, 0)
	g.Reset()
	assert.Equal(t, NewState(), g.State())
	assert.Equal(t, New().View(), g.View())
}

func TestAttemptMoveDoesNotAlias(t *testing.T) {
	s := NewState()
	_, ok := AttemptMove(s, sq(2, 1), sq(1, 2))
	require.True(t, ok)
	assert.Equal(t, NewState(), s)
}
