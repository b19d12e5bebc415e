package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/game/gametest"
)

func choose(g *Game, c string) game.Result {
	return g.Apply(game.Action{Type: game.ActChoose, Choice: c})
}

func wrong(opts []string, target string) string {
	for _, o := range opts {
		if o != target {
			return o
		}
	}
	return ""
}

// playRound picks the right color and shape.
func playRound(t *testing.T, g *Game) game.Result {
	t.Helper()
	r := g.Round()
	require.Equal(t, game.Accepted, choose(g, r.Color).Outcome)
	return choose(g, r.Shape)
}

func TestRoundOptions(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		r := NewRound(game.NewRand(seed))
		for _, opts := range []struct {
			list   []string
			target string
		}{{r.ColorOptions, r.Color}, {r.ShapeOptions, r.Shape}} {
			require.Len(t, opts.list, OptionCount)
			assert.Contains(t, opts.list, opts.target)
			seen := map[string]bool{}
			for _, o := range opts.list {
				assert.False(t, seen[o], "duplicate %s", o)
				seen[o] = true
			}
		}
		assert.Contains(t, Colors, r.Color)
		assert.Contains(t, Shapes, r.Shape)
	}
}

func TestRoundUsesInjectedRand(t *testing.T) {
	r := NewRound(gametest.Fixed(2))
	assert.Equal(t, "green", r.Color)
	assert.Equal(t, "triangle", r.Shape)
}

func TestColorThenShape(t *testing.T) {
	g := New(game.Config{}, game.NewRand(5))
	r := g.Round()

	res := choose(g, r.Color)
	assert.Equal(t, game.Result{Outcome: game.Accepted, Message: MsgColorOK}, res)
	assert.Equal(t, 1, g.Score())
	v := g.View().(View)
	assert.Equal(t, StepShape, v.Step)
	assert.Equal(t, r.Shape, v.Shape)
	assert.Len(t, v.ShapeOptions, OptionCount)

	res = choose(g, r.Shape)
	assert.Equal(t, game.Result{Outcome: game.Accepted, Message: MsgRoundOK}, res)
	assert.Equal(t, 2, g.Score())

	act, delay, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, game.ActAdvance, act.Type)
	assert.Equal(t, AdvanceDelay, delay)
	assert.Equal(t, game.Ignored, choose(g, r.Shape).Outcome, "waiting for next round")

	require.Equal(t, game.Accepted, g.Apply(act).Outcome)
	v = g.View().(View)
	assert.Equal(t, StepColor, v.Step)
	assert.Empty(t, v.Message)
	assert.Empty(t, v.ShapeOptions)
	_, _, ok = g.Pending()
	assert.False(t, ok)
}

func TestWrongPickKeepsScore(t *testing.T) {
	g := New(game.Config{}, game.NewRand(9))
	r := g.Round()
	res := choose(g, wrong(r.ColorOptions, r.Color))
	assert.Equal(t, game.Reject(MsgWrong), res)
	assert.Zero(t, g.Score())
	assert.Equal(t, MsgWrong, g.View().(View).Message)

	choose(g, r.Color)
	assert.Equal(t, game.Rejected, choose(g, wrong(r.ShapeOptions, r.Shape)).Outcome)
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, StepShape, g.View().(View).Step)
}

func TestTenPointsWin(t *testing.T) {
	g := New(game.Config{Delay: -1}, game.NewRand(3))
	for i := 0; i < 4; i++ {
		require.Equal(t, MsgRoundOK, playRound(t, g).Message)
		g.Apply(game.Action{Type: game.ActAdvance})
	}
	res := playRound(t, g)
	assert.Equal(t, MsgWin, res.Message)
	assert.Equal(t, game.StatusWon, g.Terminal().Status)
	_, _, ok := g.Pending()
	assert.False(t, ok, "no round after a win")
	assert.Equal(t, game.Ignored, choose(g, g.Round().Color).Outcome)
}

func TestResetAndDelayOverride(t *testing.T) {
	g := New(game.Config{Delay: 10 * time.Millisecond}, game.NewRand(4))
	playRound(t, g)
	_, delay, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, delay)

	g.Reset()
	v := g.View().(View)
	assert.Zero(t, v.Score)
	assert.Equal(t, StepColor, v.Step)
	assert.Empty(t, v.Message)
	_, _, ok = g.Pending()
	assert.False(t, ok)
}
