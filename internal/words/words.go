// internal/words/words.go
//
// Hangman word list management.
//
// Responsibilities:
//   - Load the word list from a file (config WORDS_FILE) or fall back to
//     the embedded list.
//   - Normalize entries: lowercase, trimmed, ASCII letters only, MinLen..MaxLen.
//   - Supply Random (injected randomness), At (daily index), All and Stats.
//
// Init runs once (sync.Once); Load replaces the list explicitly (tests).

package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/akj2003/GamingHub/assets"
	"github.com/akj2003/GamingHub/internal/game"
)

const (
	MinLen = 3
	MaxLen = 16

	// Fallback is used when no list could be loaded.
	Fallback = "gopher"
)

var (
	initOnce   sync.Once
	initialErr error

	mu   sync.RWMutex
	list []string
)

// Init loads the word list from path exactly once. An empty path selects
// the embedded list.
// Returns an error if the file cannot be read or yields no usable words.
func Init(path string) error {
	initOnce.Do(func() { initialErr = loadFrom(path) })
	return initialErr
}

func loadFrom(path string) error {
	var (
		ws  []string
		err error
	)
	if path != "" {
		ws, err = readWordFile(path)
	} else {
		var raw []string
		raw, err = assets.WordList()
		ws = normalize(raw)
	}
	if err != nil {
		return err
	}
	if len(ws) == 0 {
		return errors.New("words: list is empty")
	}
	Load(ws)
	return nil
}

// Load replaces the word list with the valid entries of ws.
func Load(ws []string) {
	clean := normalize(ws)
	mu.Lock()
	list = clean
	mu.Unlock()
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scan(f)
}

func scan(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return normalize(out), sc.Err()
}

func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, w := range in {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) < MinLen || len(w) > MaxLen || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a uniformly chosen word, or Fallback if nothing is loaded.
func Random(r game.Rand) string {
	mu.RLock()
	defer mu.RUnlock()
	if len(list) == 0 {
		return Fallback
	}
	return game.Pick(r, list)
}

// At returns the word at i modulo the list length, or Fallback.
func At(i int) string {
	mu.RLock()
	defer mu.RUnlock()
	if len(list) == 0 {
		return Fallback
	}
	i %= len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}

// All returns a copy of the loaded list.
func All() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), list...)
}

// Stats returns the number of loaded words.
func Stats() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(list)
}

// Valid reports whether w would survive normalization.
func Valid(w string) bool {
	return len(normalize([]string{w})) == 1
}
