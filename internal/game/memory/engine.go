// internal/game/memory/engine.go
//
// Memory matching engine.
//   - The deck holds every symbol exactly twice, shuffled at start.
//   - At most two unmatched cards are face up ("pending pair"); further flips
//     are ignored until the pair resolves.
//   - A matching pair stays face up for good. A mismatched pair stays visible
//     for FlipBackDelay, then a "resolve" action turns both face down.
//   - Moves count completed pair attempts, matched or not.
//   - The game is won when every symbol is matched.

package memory

import (
	"fmt"
	"time"

	"github.com/akj2003/GamingHub/internal/game"
)

const (
	DefaultPairs  = 8
	FlipBackDelay = time.Second
)

// Symbols is the pool cards are drawn from, in order.
var Symbols = []string{"🐶", "🐱", "🦊", "🐼", "🐸", "🦁", "🐵", "🐙", "🦄", "🐢", "🐝", "🐧"}

// Card is one card of the deck.
type Card struct {
	Symbol  string
	FaceUp  bool
	Matched bool
}

// State is the pure game state.
type State struct {
	Cards   []Card
	Pending []int // indices of face-up unmatched cards, at most 2
	Moves   int
	Matches int
	Pairs   int
}

// Won reports whether every pair is matched.
func (s State) Won() bool { return s.Pairs > 0 && s.Matches == s.Pairs }

// clone copies the slices so callers never share backing arrays.
func (s State) clone() State {
	s.Cards = append([]Card(nil), s.Cards...)
	s.Pending = append([]int(nil), s.Pending...)
	return s
}

// NewDeck returns pairs*2 shuffled cards using the first pairs symbols.
func NewDeck(pairs int, r game.Rand) []Card {
	cards := make([]Card, 0, pairs*2)
	for _, sym := range Symbols[:pairs] {
		cards = append(cards, Card{Symbol: sym}, Card{Symbol: sym})
	}
	game.Shuffle(r, cards)
	return cards
}

// Flip turns card i face up. ok is false when the game is won, i is out of
// range, the card is already face up, or a pair is still pending.
func Flip(s State, i int) (next State, ok bool) {
	if s.Won() || i < 0 || i >= len(s.Cards) || s.Cards[i].FaceUp || len(s.Pending) >= 2 {
		return s, false
	}
	next = s.clone()
	next.Cards[i].FaceUp = true
	next.Pending = append(next.Pending, i)
	if len(next.Pending) < 2 {
		return next, true
	}

	next.Moves++
	a, b := next.Pending[0], next.Pending[1]
	if next.Cards[a].Symbol == next.Cards[b].Symbol {
		next.Cards[a].Matched = true
		next.Cards[b].Matched = true
		next.Matches++
		next.Pending = nil
	}
	return next, true
}

// Mismatched reports whether two unmatched cards are waiting to flip back.
func (s State) Mismatched() bool { return len(s.Pending) == 2 }

// Resolve turns a mismatched pending pair face down.
func Resolve(s State) (next State, ok bool) {
	if !s.Mismatched() {
		return s, false
	}
	next = s.clone()
	for _, i := range next.Pending {
		next.Cards[i].FaceUp = false
	}
	next.Pending = nil
	return next, true
}

// Game adapts State to game.Engine.
type Game struct {
	pairs int
	delay time.Duration
	rng   game.Rand
	state State
}

// New deals a shuffled deck of cfg.Pairs pairs (8 by default).
func New(cfg game.Config, r game.Rand) (*Game, error) {
	pairs := cfg.Pairs
	if pairs == 0 {
		pairs = DefaultPairs
	}
	if pairs < 1 || pairs > len(Symbols) {
		return nil, fmt.Errorf("memory pairs %d: %w", cfg.Pairs, game.ErrInvalidConfig)
	}
	g := &Game{pairs: pairs, delay: cfg.DelayOr(FlipBackDelay), rng: r}
	g.Reset()
	return g, nil
}

// State returns a copy of the current state.
func (g *Game) State() State { return g.state.clone() }

func (g *Game) Kind() game.Kind { return game.KindMemory }

func (g *Game) Apply(a game.Action) game.Result {
	var (
		next State
		ok   bool
	)
	switch a.Type {
	case game.ActFlip:
		next, ok = Flip(g.state, a.Index)
	case game.ActResolve:
		next, ok = Resolve(g.state)
	}
	if !ok {
		return game.Ignore()
	}
	g.state = next
	return game.Accept("")
}

// Pending implements game.Deferred: a mismatched pair flips back after the delay.
func (g *Game) Pending() (game.Action, time.Duration, bool) {
	if !g.state.Mismatched() {
		return game.Action{}, 0, false
	}
	return game.Action{Type: game.ActResolve}, g.delay, true
}

func (g *Game) Terminal() game.Terminal {
	if g.state.Won() {
		return game.Terminal{Status: game.StatusWon}
	}
	return game.Ongoing
}

// Reset deals a freshly shuffled deck.
func (g *Game) Reset() {
	g.state = State{Cards: NewDeck(g.pairs, g.rng), Pairs: g.pairs}
}

// CardView hides the symbol of face-down cards.
type CardView struct {
	Symbol  string `json:"symbol,omitempty"`
	FaceUp  bool   `json:"faceUp"`
	Matched bool   `json:"matched"`
}

// View is the player-facing snapshot.
type View struct {
	Cards   []CardView `json:"cards"`
	Moves   int        `json:"moves"`
	Matches int        `json:"matches"`
	Pairs   int        `json:"pairs"`
}

func (g *Game) View() any {
	v := View{Cards: make([]CardView, len(g.state.Cards)), Moves: g.state.Moves, Matches: g.state.Matches, Pairs: g.state.Pairs}
	for i, c := range g.state.Cards {
		cv := CardView{FaceUp: c.FaceUp, Matched: c.Matched}
		if c.FaceUp || c.Matched {
			cv.Symbol = c.Symbol
		}
		v.Cards[i] = cv
	}
	return v
}
