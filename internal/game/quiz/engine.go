// internal/game/quiz/engine.go
//
// Shape & Color matching quiz.
// A round shows a target color, then a target shape; the player picks each
// among OptionCount choices. Every correct pick scores one point and
// reaching TargetScore wins. After a correct shape the next round starts
// once the advance delay has elapsed.

package quiz

import (
	"time"

	"github.com/akj2003/GamingHub/internal/game"
)

const (
	TargetScore  = 10
	OptionCount  = 4
	AdvanceDelay = 1200 * time.Millisecond
)

const (
	MsgColorOK = "Correct color! Now pick the shape."
	MsgWrong   = "Try again!"
	MsgRoundOK = "Correct! Next round..."
	MsgWin     = "You win!"
)

var (
	Colors = []string{"red", "blue", "green", "yellow", "purple", "orange"}
	Shapes = []string{"circle", "square", "triangle", "star", "heart", "diamond"}
)

// Step is the half of the round awaiting a pick.
type Step string

const (
	StepColor Step = "color"
	StepShape Step = "shape"
)

// Round is one target pair with its shuffled options.
type Round struct {
	Color        string
	Shape        string
	ColorOptions []string
	ShapeOptions []string
}

// NewRound draws targets and OptionCount distinct options for each.
func NewRound(r game.Rand) Round {
	color := game.Pick(r, Colors)
	shape := game.Pick(r, Shapes)
	return Round{
		Color:        color,
		Shape:        shape,
		ColorOptions: options(r, Colors, color),
		ShapeOptions: options(r, Shapes, shape),
	}
}

// options returns target plus OptionCount-1 other palette entries, shuffled.
func options(r game.Rand, palette []string, target string) []string {
	others := make([]string, 0, len(palette)-1)
	for _, p := range palette {
		if p != target {
			others = append(others, p)
		}
	}
	game.Shuffle(r, others)
	out := append(others[:OptionCount-1:OptionCount-1], target)
	game.Shuffle(r, out)
	return out
}

// Game is the quiz engine.
type Game struct {
	rng   game.Rand
	delay time.Duration

	round   Round
	step    Step
	score   int
	message string
	waiting bool // correct shape picked, next round pending
}

// New starts at score 0 on the color step.
func New(cfg game.Config, r game.Rand) *Game {
	g := &Game{rng: r, delay: cfg.DelayOr(AdvanceDelay)}
	g.Reset()
	return g
}

// Round returns the current targets and options.
func (g *Game) Round() Round { return g.round }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

func (g *Game) Kind() game.Kind { return game.KindQuiz }

func (g *Game) Apply(a game.Action) game.Result {
	switch a.Type {
	case game.ActChoose:
		return g.choose(a.Choice)
	case game.ActAdvance:
		if !g.waiting {
			return game.Ignore()
		}
		g.nextRound()
		return game.Accept("")
	default:
		return game.Ignore()
	}
}

func (g *Game) choose(choice string) game.Result {
	if g.score >= TargetScore || g.waiting {
		return game.Ignore()
	}
	want := g.round.Color
	if g.step == StepShape {
		want = g.round.Shape
	}
	if choice != want {
		g.message = MsgWrong
		return game.Reject(MsgWrong)
	}

	g.score++
	switch {
	case g.score >= TargetScore:
		g.message = MsgWin
	case g.step == StepColor:
		g.step = StepShape
		g.message = MsgColorOK
	default:
		g.waiting = true
		g.message = MsgRoundOK
	}
	return game.Accept(g.message)
}

func (g *Game) nextRound() {
	g.round = NewRound(g.rng)
	g.step = StepColor
	g.message = ""
	g.waiting = false
}

// Pending implements game.Deferred: the next round follows a correct shape.
func (g *Game) Pending() (game.Action, time.Duration, bool) {
	if !g.waiting {
		return game.Action{}, 0, false
	}
	return game.Action{Type: game.ActAdvance}, g.delay, true
}

func (g *Game) Terminal() game.Terminal {
	if g.score >= TargetScore {
		return game.Terminal{Status: game.StatusWon}
	}
	return game.Ongoing
}

// Reset sets the score to 0 and draws a fresh round.
func (g *Game) Reset() {
	g.score = 0
	g.nextRound()
}

// View is the player-facing snapshot. ShapeOptions are sent only on the
// shape step.
type View struct {
	Score        int      `json:"score"`
	Target       int      `json:"target"`
	Step         Step     `json:"step"`
	Color        string   `json:"color"`
	Shape        string   `json:"shape,omitempty"`
	ColorOptions []string `json:"colorOptions"`
	ShapeOptions []string `json:"shapeOptions,omitempty"`
	Message      string   `json:"message,omitempty"`
}

func (g *Game) View() any {
	v := View{
		Score:        g.score,
		Target:       TargetScore,
		Step:         g.step,
		Color:        g.round.Color,
		ColorOptions: append([]string(nil), g.round.ColorOptions...),
		Message:      g.message,
	}
	if g.step == StepShape {
		v.Shape = g.round.Shape
		v.ShapeOptions = append([]string(nil), g.round.ShapeOptions...)
	}
	return v
}
