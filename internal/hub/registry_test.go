package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/game/gametest"
)

func TestConstructEveryKind(t *testing.T) {
	for _, k := range game.Kinds {
		e, err := Construct(k, game.Config{}, game.NewRand(1))
		require.NoError(t, err, k)
		assert.Equal(t, k, e.Kind())
		assert.Equal(t, game.Ongoing, e.Terminal(), k)
		assert.NotNil(t, e.View())
	}
}

func TestConstructErrors(t *testing.T) {
	e, err := Construct("checkers", game.Config{}, gametest.Fixed())
	assert.ErrorIs(t, err, game.ErrUnknownKind)
	assert.Nil(t, e)

	bad := map[game.Kind]game.Config{
		game.KindSudoku:      {Difficulty: "extreme"},
		game.KindLudo:        {Players: 9},
		game.KindMinesweeper: {Rows: 2, Cols: 2, Mines: 4},
		game.KindMemory:      {Pairs: 100},
		game.KindHangman:     {Word: "x1"},
	}
	for k, cfg := range bad {
		e, err := Construct(k, cfg, gametest.Fixed())
		assert.ErrorIs(t, err, game.ErrInvalidConfig, k)
		assert.Nil(t, e, k)
	}
}
