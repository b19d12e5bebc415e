// internal/game/hangman/engine.go
//
// Hangman engine.
//   - The secret word comes from the word list (random), the daily index, or
//     a fixed Config.Word.
//   - A guess is one ASCII letter, case-insensitive. Repeats, non-letters and
//     guesses after the game ended are ignored.
//   - Every letter of the word guessed => won. MaxWrong misses => lost, and
//     the view reveals the word.

package hangman

import (
	"fmt"
	"strings"
	"time"

	"github.com/akj2003/GamingHub/internal/daily"
	"github.com/akj2003/GamingHub/internal/game"
	"github.com/akj2003/GamingHub/internal/words"
)

const (
	MaxWrong    = 6
	Placeholder = "_"
)

// State is the pure game state. Guessed is indexed by letter - 'a'.
type State struct {
	Word    string
	Guessed [26]bool
	Wrong   int
	Status  game.Status
}

// NewState starts a game on word (lowercase letters).
func NewState(word string) State {
	return State{Word: word, Status: game.StatusPlaying}
}

// Guess records letter. ok is false when the guess is ignored.
func Guess(s State, letter string) (next State, ok bool) {
	if s.Status != game.StatusPlaying || len(letter) != 1 {
		return s, false
	}
	c := letter[0] | 0x20 // ASCII lowercase
	if c < 'a' || c > 'z' || s.Guessed[c-'a'] {
		return s, false
	}
	next = s
	next.Guessed[c-'a'] = true
	if strings.IndexByte(s.Word, c) < 0 {
		next.Wrong++
		if next.Wrong >= MaxWrong {
			next.Status = game.StatusLost
		}
		return next, true
	}
	if next.complete() {
		next.Status = game.StatusWon
	}
	return next, true
}

func (s State) complete() bool {
	for i := 0; i < len(s.Word); i++ {
		if !s.Guessed[s.Word[i]-'a'] {
			return false
		}
	}
	return true
}

// Display maps each letter of the word to itself if guessed, else Placeholder.
func (s State) Display() []string {
	out := make([]string, len(s.Word))
	for i := 0; i < len(s.Word); i++ {
		if s.Guessed[s.Word[i]-'a'] {
			out[i] = s.Word[i : i+1]
		} else {
			out[i] = Placeholder
		}
	}
	return out
}

// Letters returns the guessed letters in alphabetical order.
func (s State) Letters() []string {
	var out []string
	for i, g := range s.Guessed {
		if g {
			out = append(out, string(rune('a'+i)))
		}
	}
	return out
}

// Source decides where secret words come from.
type Source struct {
	Salt string           // daily HMAC salt
	Now  func() time.Time // clock for the daily word; time.Now if nil
}

func (src Source) pick(cfg game.Config, r game.Rand) string {
	switch {
	case cfg.Word != "":
		return strings.ToLower(strings.TrimSpace(cfg.Word))
	case cfg.Daily:
		now := time.Now
		if src.Now != nil {
			now = src.Now
		}
		return words.At(daily.Index(now(), src.Salt, words.Stats()))
	default:
		return words.Random(r)
	}
}

// Game adapts State to game.Engine.
type Game struct {
	cfg   game.Config
	rng   game.Rand
	src   Source
	state State
}

// New starts a game with an unsalted daily source.
func New(cfg game.Config, r game.Rand) (*Game, error) {
	return NewWithSource(cfg, r, Source{})
}

// NewWithSource validates cfg.Word and draws the first word from src.
func NewWithSource(cfg game.Config, r game.Rand, src Source) (*Game, error) {
	if cfg.Word != "" && !words.Valid(cfg.Word) {
		return nil, fmt.Errorf("hangman word %q: %w", cfg.Word, game.ErrInvalidConfig)
	}
	g := &Game{cfg: cfg, rng: r, src: src}
	g.Reset()
	return g, nil
}

// State returns the current state (a value copy).
func (g *Game) State() State { return g.state }

func (g *Game) Kind() game.Kind { return game.KindHangman }

func (g *Game) Apply(a game.Action) game.Result {
	if a.Type != game.ActGuess {
		return game.Ignore()
	}
	next, ok := Guess(g.state, a.Letter)
	if !ok {
		return game.Ignore()
	}
	g.state = next
	return game.Accept("")
}

func (g *Game) Terminal() game.Terminal { return game.Terminal{Status: g.state.Status} }

// Reset draws a new word (the same one for fixed and daily games).
func (g *Game) Reset() {
	g.state = NewState(g.src.pick(g.cfg, g.rng))
}

// View is the player-facing snapshot. Word is set only after a loss.
type View struct {
	Display  []string    `json:"display"`
	Guessed  []string    `json:"guessed"`
	Wrong    int         `json:"wrong"`
	MaxWrong int         `json:"maxWrong"`
	Status   game.Status `json:"status"`
	Word     string      `json:"word,omitempty"`
}

func (g *Game) View() any {
	v := View{
		Display:  g.state.Display(),
		Guessed:  g.state.Letters(),
		Wrong:    g.state.Wrong,
		MaxWrong: MaxWrong,
		Status:   g.state.Status,
	}
	if g.state.Status == game.StatusLost {
		v.Word = g.state.Word
	}
	return v
}
