// internal/game/ludo/engine.go
//
// Mini-Ludo engine: a linear track per player, one token each.
//   - Positions run 0..Finish; tokens never block or capture each other.
//   - A roll that would pass Finish is wasted (overshoot), the token stays.
//   - Landing exactly on Finish wins; the turn then stops advancing.
//   - Otherwise the turn passes to the next player after every roll.
//
// The roll is preceded by a cosmetic animation (see Animation); the faces it
// shows are throwaway values, only the committed roll moves a token.

package ludo

import (
	"fmt"
	"time"

	"github.com/akj2003/GamingHub/internal/game"
)

const (
	Finish     = 20
	MinPlayers = 2
	MaxPlayers = 4
	DieFaces   = 6

	DefaultPlayers = 2
	RollFrame      = 80 * time.Millisecond
	RollDuration   = 800 * time.Millisecond
)

// State is the pure game state. Positions beyond Players are unused.
type State struct {
	Players   int
	Positions [MaxPlayers]int
	Current   int
	Winner    int // -1 while nobody has won
	LastRoll  int // 0 before the first roll
}

// NewState returns all tokens at the start with player 0 to roll.
func NewState(players int) State {
	return State{Players: players, Winner: -1}
}

// Over reports whether a player has finished.
func (s State) Over() bool { return s.Winner >= 0 }

// Move applies a roll for the current player. Rolls outside 1..DieFaces and
// rolls after the game is over are rejected (ok false, s unchanged).
func Move(s State, roll int) (next State, ok bool) {
	if s.Over() || roll < 1 || roll > DieFaces {
		return s, false
	}
	next = s
	next.LastRoll = roll
	if pos := s.Positions[s.Current] + roll; pos <= Finish {
		next.Positions[s.Current] = pos
		if pos == Finish {
			next.Winner = s.Current
			return next, true
		}
	}
	next.Current = (s.Current + 1) % s.Players
	return next, true
}

// RollAndMove draws a uniform roll in [1, DieFaces] and applies it.
func RollAndMove(s State, r game.Rand) (State, bool) {
	return Move(s, 1+r.IntN(DieFaces))
}

// PlayerName is the display name of player i (0-based).
func PlayerName(i int) string { return fmt.Sprintf("Player %d", i+1) }

// Game adapts State to game.Engine.
type Game struct {
	state  State
	rng    game.Rand
	frames game.Rand // cosmetic faces, kept apart from the real rolls
	delay  time.Duration
}

// New starts a game for cfg.Players (2 by default).
func New(cfg game.Config, r game.Rand) (*Game, error) {
	n := cfg.Players
	if n == 0 {
		n = DefaultPlayers
	}
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("ludo players %d: %w", cfg.Players, game.ErrInvalidConfig)
	}
	return &Game{state: NewState(n), rng: r, frames: game.NewRand(0), delay: cfg.DelayOr(RollDuration)}, nil
}

// State returns the current state by value.
func (g *Game) State() State { return g.state }

func (g *Game) Kind() game.Kind { return game.KindLudo }

func (g *Game) Apply(a game.Action) game.Result {
	switch a.Type {
	case game.ActRoll:
		next, ok := RollAndMove(g.state, g.rng)
		if !ok {
			return game.Ignore()
		}
		g.state = next
		return game.Accept("")
	case game.ActPlayers:
		if a.Index < MinPlayers || a.Index > MaxPlayers {
			return game.Ignore()
		}
		g.state = NewState(a.Index)
		return game.Accept("")
	default:
		return game.Ignore()
	}
}

// Animation implements game.Animator for rolls.
func (g *Game) Animation(a game.Action) (game.Animation, bool) {
	if a.Type != game.ActRoll || g.state.Over() || g.delay <= 0 {
		return game.Animation{}, false
	}
	return game.Animation{
		Interval: RollFrame,
		Duration: g.delay,
		Frame:    func() any { return 1 + g.frames.IntN(DieFaces) },
	}, true
}

func (g *Game) Terminal() game.Terminal {
	if g.state.Over() {
		return game.Terminal{Status: game.StatusWon, Winner: PlayerName(g.state.Winner)}
	}
	return game.Ongoing
}

// Reset keeps the player count.
func (g *Game) Reset() { g.state = NewState(g.state.Players) }

// View is the player-facing snapshot.
type View struct {
	Players   int    `json:"players"`
	Positions []int  `json:"positions"`
	Finish    int    `json:"finish"`
	Current   string `json:"current"`
	LastRoll  int    `json:"lastRoll,omitempty"`
	Winner    string `json:"winner,omitempty"`
}

func (g *Game) View() any {
	s := g.state
	v := View{
		Players:   s.Players,
		Positions: append([]int(nil), s.Positions[:s.Players]...),
		Finish:    Finish,
		Current:   PlayerName(s.Current),
		LastRoll:  s.LastRoll,
	}
	if s.Over() {
		v.Winner = PlayerName(s.Winner)
	}
	return v
}
