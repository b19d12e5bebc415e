// internal/hub/session.go
//
// A Session owns exactly one engine and serializes every access to it.
//
// Besides forwarding Apply/Reset it drives the time-based parts the engines
// only describe:
//   - game.Deferred: a follow-up action fired after a delay (memory
//     flip-back, quiz advance). A delay <= 0 applies it inline.
//   - game.Animator: cosmetic frames before an action commits (ludo roll).
//     While an animation runs every other action is ignored.
//
// Every animation captures the generation counter at scheduling time and is
// dropped when the counter has moved on (reset or close in between). The
// deferred timer carries its own sequence number: it is re-armed whenever
// the engine's pending follow-up changes or disappears, so a manual resolve
// never leaves an old timer behind for the next pair.
// Subscribers receive a Snapshot after every change.

package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akj2003/GamingHub/internal/game"
)

// maxInline bounds zero-delay follow-up chains.
const maxInline = 8

// Snapshot is what clients see of a session.
type Snapshot struct {
	ID       string        `json:"id"`
	Kind     game.Kind     `json:"kind"`
	Terminal game.Terminal `json:"terminal"`
	View     any           `json:"view"`
	Result   *game.Result  `json:"result,omitempty"`
	Rolling  bool          `json:"rolling"`
	Display  any           `json:"display,omitempty"`
}

// Session is a single-owner mutable slot holding one running game.
type Session struct {
	ID      string
	Owner   string
	Created time.Time

	mu         sync.Mutex
	engine     game.Engine
	gen        uint64
	last       *game.Result
	lastActive time.Time
	closed     bool

	pending    *time.Timer
	pendingAct game.Action
	timerSeq   uint64
	rolling    bool
	display    any
	cancelAnim context.CancelFunc

	subs    map[int]chan Snapshot
	nextSub int
}

// NewSession wraps e under a fresh uuid.
func NewSession(owner string, e game.Engine) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		Owner:      owner,
		Created:    now,
		engine:     e,
		lastActive: now,
		subs:       make(map[int]chan Snapshot),
	}
}

// Kind reports the game kind.
func (s *Session) Kind() game.Kind { return s.engine.Kind() }

// LastActive is the time of the last Apply, Reset or Subscribe.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Terminal reports the engine's lifecycle state.
func (s *Session) Terminal() game.Terminal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Terminal()
}

// Apply forwards a to the engine, or starts its animation when the engine
// animates a. It returns the outcome and the resulting snapshot.
func (s *Session) Apply(a game.Action) (game.Result, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	if s.closed || s.rolling {
		return game.Ignore(), s.snapshotLocked()
	}

	if an, ok := s.engine.(game.Animator); ok {
		if anim, ok := an.Animation(a); ok {
			s.startAnimation(a, anim)
			res := game.Accept("")
			s.last = &res
			s.publishLocked()
			return res, s.snapshotLocked()
		}
	}

	res := s.engine.Apply(a)
	s.last = &res
	s.scheduleLocked()
	s.publishLocked()
	return res, s.snapshotLocked()
}

// Reset discards pending timers and animations and rebuilds the game.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	if s.closed {
		return s.snapshotLocked()
	}
	s.stopLocked()
	s.engine.Reset()
	s.last = nil
	s.publishLocked()
	return s.snapshotLocked()
}

// Close stops all timers and disconnects subscribers. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stopLocked()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

// Subscribe returns a channel of snapshots, primed with the current one,
// and a function that ends the subscription. Slow readers miss updates
// rather than blocking the session.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	ch := make(chan Snapshot, 16)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			close(c)
			delete(s.subs, id)
		}
	}
}

// stopLocked invalidates every outstanding timer.
func (s *Session) stopLocked() {
	s.gen++
	s.disarmLocked()
	if s.cancelAnim != nil {
		s.cancelAnim()
		s.cancelAnim = nil
	}
	s.rolling = false
	s.display = nil
}

// disarmLocked stops the deferred timer and invalidates it if it already fired.
func (s *Session) disarmLocked() {
	s.timerSeq++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.pendingAct = game.Action{}
}

// scheduleLocked syncs the deferred timer with the engine's follow-up. A
// timer already armed for the same action keeps its deadline.
func (s *Session) scheduleLocked() {
	d, ok := s.engine.(game.Deferred)
	if !ok {
		return
	}
	for i := 0; i < maxInline; i++ {
		a, after, ok := d.Pending()
		if !ok {
			s.disarmLocked()
			return
		}
		if s.pending != nil && s.pendingAct == a {
			return
		}
		s.disarmLocked()
		if after > 0 {
			seq := s.timerSeq
			s.pendingAct = a
			s.pending = time.AfterFunc(after, func() { s.fire(seq, a) })
			return
		}
		s.engine.Apply(a)
	}
	log.Warn().Str("session", s.ID).Str("kind", string(s.engine.Kind())).Msg("deferred chain did not settle")
}

func (s *Session) fire(seq uint64, a game.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.timerSeq || s.closed {
		log.Debug().Str("session", s.ID).Str("action", a.Type).Msg("dropping stale timer")
		return
	}
	s.pending = nil
	s.pendingAct = game.Action{}
	s.engine.Apply(a)
	s.scheduleLocked()
	s.publishLocked()
}

func (s *Session) startAnimation(a game.Action, anim game.Animation) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelAnim = cancel
	s.rolling = true
	s.display = anim.Frame()

	interval := anim.Interval
	if interval <= 0 || interval > anim.Duration {
		interval = anim.Duration
	}
	gen := s.gen
	go s.animate(ctx, gen, a, anim, interval)
}

func (s *Session) animate(ctx context.Context, gen uint64, a game.Action, anim game.Animation, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	done := time.NewTimer(anim.Duration)
	defer done.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.frame(gen, anim)
		case <-done.C:
			s.commit(gen, a)
			return
		}
	}
}

func (s *Session) frame(gen uint64, anim game.Animation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.closed || !s.rolling {
		return
	}
	s.display = anim.Frame()
	s.publishLocked()
}

func (s *Session) commit(gen uint64, a game.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.closed {
		log.Debug().Str("session", s.ID).Str("action", a.Type).Msg("dropping stale animation")
		return
	}
	s.rolling = false
	s.display = nil
	if s.cancelAnim != nil {
		s.cancelAnim()
		s.cancelAnim = nil
	}
	res := s.engine.Apply(a)
	s.last = &res
	s.scheduleLocked()
	s.publishLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:       s.ID,
		Kind:     s.engine.Kind(),
		Terminal: s.engine.Terminal(),
		View:     s.engine.View(),
		Rolling:  s.rolling,
		Display:  s.display,
	}
	if s.last != nil {
		r := *s.last
		snap.Result = &r
	}
	return snap
}

func (s *Session) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			log.Debug().Str("session", s.ID).Msg("subscriber lagging, update dropped")
		}
	}
}
