package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/game/gametest"
)

func pt(r, c int) Point { return Point{Row: r, Col: c} }

func act(g *Game, typ string, r, c int) game.Result {
	return g.Apply(game.Action{Type: typ, Row: r, Col: c})
}

// wallBoard is 5x5 with a column of mines at col 2.
func wallBoard() *Board {
	return NewBoardWithMines(5, 5, []Point{pt(0, 2), pt(1, 2), pt(2, 2), pt(3, 2), pt(4, 2)})
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b := NewBoard(8, 8, 10, game.NewRand(seed))
		mines := 0
		for r := range b.Cells {
			for c := range b.Cells[r] {
				if b.Cells[r][c].Mine {
					mines++
				}
			}
		}
		assert.Equal(t, 10, mines, "seed %d", seed)
	}
}

func TestAdjacencyCounts(t *testing.T) {
	b := wallBoard()
	assert.Equal(t, 0, b.Cells[0][0].Adjacent)
	assert.Equal(t, 2, b.Cells[0][1].Adjacent)
	assert.Equal(t, 3, b.Cells[2][1].Adjacent)
	assert.Equal(t, 2, b.Cells[4][3].Adjacent)
	assert.Equal(t, 2, b.Cells[1][2].Adjacent, "mines count their mined neighbors too")
}

func TestFloodFillRevealsRegionAndBorder(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	require.Equal(t, game.Accepted, act(g, game.ActReveal, 0, 0).Outcome)

	b := g.Board()
	for r := 0; r < 5; r++ {
		assert.True(t, b.Cells[r][0].Revealed, "zero cell %d,0", r)
		assert.True(t, b.Cells[r][1].Revealed, "border cell %d,1", r)
		assert.False(t, b.Cells[r][2].Revealed, "mine %d,2", r)
		assert.False(t, b.Cells[r][3].Revealed, "other side %d,3", r)
	}
	assert.Equal(t, game.Ongoing, g.Terminal())
}

func TestFloodFillTerminatesOnLargeBoard(t *testing.T) {
	b := NewBoardWithMines(MaxSize, MaxSize, []Point{pt(0, 0)})
	g := NewWithBoard(b, 1, gametest.Fixed())
	require.Equal(t, game.Accepted, act(g, game.ActReveal, MaxSize-1, MaxSize-1).Outcome)
	assert.Equal(t, game.StatusWon, g.Terminal().Status)
	assert.True(t, g.Board().Cells[0][0].Flagged, "win auto-flags mines")
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	require.Equal(t, game.Accepted, act(g, game.ActFlag, 4, 0).Outcome)
	act(g, game.ActReveal, 0, 0)
	b := g.Board()
	assert.False(t, b.Cells[4][0].Revealed)
	assert.True(t, b.Cells[4][0].Flagged)
}

func TestRevealNoOps(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	assert.Equal(t, game.Ignored, act(g, game.ActReveal, -1, 0).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActReveal, 0, 5).Outcome)

	require.Equal(t, game.Accepted, act(g, game.ActReveal, 0, 1).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActReveal, 0, 1).Outcome, "already revealed")

	require.Equal(t, game.Accepted, act(g, game.ActFlag, 0, 4).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActReveal, 0, 4).Outcome, "flagged")
}

func TestHittingMineLoses(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	require.Equal(t, game.Accepted, act(g, game.ActFlag, 4, 2).Outcome)
	require.Equal(t, game.Accepted, act(g, game.ActReveal, 0, 2).Outcome)
	assert.Equal(t, game.StatusLost, g.Terminal().Status)

	b := g.Board()
	flags := 0
	for r := 0; r < 5; r++ {
		assert.True(t, b.Cells[r][2].Revealed, "mine %d,2 shown", r)
		if b.Cells[r][2].Flagged {
			flags++
		}
	}
	assert.Equal(t, 1, flags, "no auto-flagging on loss")
	assert.False(t, b.Cells[0][0].Revealed)

	assert.Equal(t, game.Ignored, act(g, game.ActReveal, 0, 0).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActFlag, 0, 0).Outcome)
	assert.Equal(t, game.Ignored, g.Apply(game.Action{Type: game.ActMode}).Outcome)
}

func TestWinAutoFlagsAndFreezes(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	act(g, game.ActReveal, 0, 0)
	act(g, game.ActReveal, 0, 4)
	assert.Equal(t, game.StatusWon, g.Terminal().Status)

	v := g.View().(View)
	for r := 0; r < 5; r++ {
		assert.Equal(t, "flagged", v.Cells[r][2].State)
	}
	assert.Zero(t, v.MinesRemaining)
	assert.Equal(t, game.Ignored, g.Apply(game.Action{Type: game.ActMode}).Outcome)
}

func TestFlagCapAndRevealedNoOp(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{pt(1, 1)})
	g := NewWithBoard(b, 1, gametest.Fixed())

	require.Equal(t, game.Accepted, act(g, game.ActFlag, 0, 0).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActFlag, 0, 1).Outcome, "cap reached")
	assert.Equal(t, 1, g.Board().Flags())

	require.Equal(t, game.Accepted, act(g, game.ActFlag, 0, 0).Outcome, "unflag is always allowed")
	assert.Zero(t, g.Board().Flags())

	require.Equal(t, game.Accepted, act(g, game.ActReveal, 2, 2).Outcome)
	assert.Equal(t, game.Ignored, act(g, game.ActFlag, 2, 2).Outcome, "revealed")
	assert.False(t, g.Board().Cells[2][2].Flagged)
}

func TestClickFollowsMode(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	assert.Equal(t, ModeReveal, g.Mode())
	require.Equal(t, game.Accepted, g.Apply(game.Action{Type: game.ActMode}).Outcome)
	assert.Equal(t, ModeFlag, g.Mode())

	require.Equal(t, game.Accepted, act(g, game.ActClick, 0, 2).Outcome)
	assert.True(t, g.Board().Cells[0][2].Flagged)
	assert.Equal(t, game.Ongoing, g.Terminal())

	g.Apply(game.Action{Type: game.ActMode})
	require.Equal(t, game.Accepted, act(g, game.ActClick, 0, 0).Outcome)
	assert.True(t, g.Board().Cells[0][0].Revealed)
}

func TestViewHidesMines(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	v := g.View().(View)
	for _, row := range v.Cells {
		for _, c := range row {
			assert.Equal(t, CellView{State: "hidden"}, c)
		}
	}
	assert.Equal(t, 5, v.MinesRemaining)
}

func TestBoardIsNotAliased(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, gametest.Fixed())
	before := g.Board()
	act(g, game.ActReveal, 0, 0)
	assert.False(t, before.Cells[0][0].Revealed)
}

func TestConfigValidation(t *testing.T) {
	bad := []game.Config{
		{Rows: 2, Cols: 2},            // default 10 mines do not fit
		{Rows: 3, Cols: 3, Mines: 9},  // mine count must be below cell count
		{Rows: -1},
		{Cols: MaxSize + 1},
		{Mines: -4},
	}
	for _, cfg := range bad {
		_, err := New(cfg, gametest.Fixed())
		assert.ErrorIs(t, err, game.ErrInvalidConfig, "%+v", cfg)
	}

	g, err := New(game.Config{}, game.NewRand(7))
	require.NoError(t, err)
	v := g.View().(View)
	assert.Len(t, v.Cells, DefaultSize)
	assert.Equal(t, DefaultMines, v.Mines)
}

func TestResetRandomizesFreshBoard(t *testing.T) {
	g, err := New(game.Config{Rows: 4, Cols: 4, Mines: 3}, game.NewRand(3))
	require.NoError(t, err)
	act(g, game.ActFlag, 0, 0)
	g.Apply(game.Action{Type: game.ActMode})
	g.Reset()
	assert.Equal(t, ModeReveal, g.Mode())
	assert.Equal(t, game.Ongoing, g.Terminal())
	assert.Zero(t, g.Board().Flags())
	assert.Equal(t, 3, g.View().(View).MinesRemaining)
}

func TestResetAfterPreparedBoard(t *testing.T) {
	g := NewWithBoard(wallBoard(), 5, game.NewRand(9))
	act(g, game.ActReveal, 0, 2)
	require.Equal(t, game.StatusLost, g.Terminal().Status)

	g.Reset()
	assert.Equal(t, game.Ongoing, g.Terminal())
	b := g.Board()
	mines := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			assert.False(t, b.Cells[r][c].Revealed)
			if b.Cells[r][c].Mine {
				mines++
			}
		}
	}
	assert.Equal(t, 5, mines)
}
