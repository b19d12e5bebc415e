// internal/game/engine.go
//
// The contract shared by every game engine.
//
// Engines are single-owner, synchronous state machines: each Apply call runs
// to completion and either mutates the state (accepted) or leaves it as it was
// (ignored/rejected). Engines never block, never log and never start timers;
// anything time-based is described through the optional Deferred and Animator
// capabilities and driven by the hub session that owns the engine.
package game

import "time"

// Engine is one running game instance.
type Engine interface {
	// Kind reports which game this engine plays.
	Kind() Kind

	// Apply attempts one user action. It is total: illegal or malformed
	// actions (unknown type, out-of-range coordinates) are ignored, never panics.
	Apply(a Action) Result

	// Terminal reports the current lifecycle state.
	Terminal() Terminal

	// Reset discards all state and rebuilds the initial board, freshly
	// randomized where the game uses randomness.
	Reset()

	// View returns a JSON-serializable snapshot safe to show to the player
	// (hidden information such as mine positions stays hidden).
	View() any
}

// Deferred is implemented by engines that need an automatic follow-up action
// after a visible pause, e.g. flipping back a mismatched memory pair.
type Deferred interface {
	// Pending returns the follow-up action and how long to wait before it.
	// ok is false when nothing is scheduled.
	Pending() (a Action, after time.Duration, ok bool)
}

// Animation describes a cosmetic animation that precedes an action.
// Frame is called every Interval until Duration has elapsed; its values are
// for display only and never affect the game.
type Animation struct {
	Interval time.Duration
	Duration time.Duration
	Frame    func() any
}

// Animator is implemented by engines whose actions are preceded by an
// animation (the Ludo dice roll).
type Animator interface {
	Animation(a Action) (Animation, bool)
}
