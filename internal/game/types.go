// internal/game/types.go
//
// Shared type definitions for every mini-game engine.
// Defines:
//   - Kind: which game an engine plays.
//   - Status/Terminal: ongoing vs. won/draw/lost.
//   - Outcome/Result: how an attempted action was handled.
//   - Action: the single action shape the UI sends to any engine.
//   - Config: construction options (each engine reads the fields it needs).

package game

import "time"

// Kind names a game variant.
type Kind string

const (
	KindTicTacToe   Kind = "tictactoe"
	KindChess       Kind = "chess"
	KindSudoku      Kind = "sudoku"
	KindLudo        Kind = "ludo"
	KindMinesweeper Kind = "minesweeper"
	KindMemory      Kind = "memory"
	KindHangman     Kind = "hangman"
	KindQuiz        Kind = "quiz"
)

// Kinds lists every supported variant in hub display order.
var Kinds = []Kind{
	KindTicTacToe, KindQuiz, KindLudo, KindSudoku,
	KindChess, KindMemory, KindHangman, KindMinesweeper,
}

// Status is the coarse lifecycle state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
	StatusLost    Status = "lost"
)

// Terminal reports whether a game is over and, for multi-player games, who won.
// Winner is empty for draws and for single-player games.
type Terminal struct {
	Status Status `json:"status"`
	Winner string `json:"winner,omitempty"`
}

// Ongoing is the Terminal value of a game still accepting moves.
var Ongoing = Terminal{Status: StatusPlaying}

// Over reports whether no further mutating action is accepted until reset.
func (t Terminal) Over() bool { return t.Status != StatusPlaying }

// Outcome classifies how an engine handled an action.
//   - "accepted": state changed.
//   - "ignored":  rejected silently, state unchanged.
//   - "rejected": rejected with a short human-readable reason in Result.Message.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Ignored  Outcome = "ignored"
	Rejected Outcome = "rejected"
)

// Result is returned by Engine.Apply. Message may also carry an informational
// note on accepted actions (e.g. the quiz "Correct color!" prompt).
type Result struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
}

var (
	accepted = Result{Outcome: Accepted}
	ignored  = Result{Outcome: Ignored}
)

// Accept returns an accepted result with an optional message.
func Accept(msg string) Result {
	if msg == "" {
		return accepted
	}
	return Result{Outcome: Accepted, Message: msg}
}

// Ignore returns a silent rejection.
func Ignore() Result { return ignored }

// Reject returns a messaged rejection.
func Reject(msg string) Result { return Result{Outcome: Rejected, Message: msg} }

// Action types understood by the engines. Each engine ignores types it does not handle.
const (
	ActPlace      = "place"      // tictactoe: Index; sudoku: Row, Col, Digit
	ActSelect     = "select"     // chess/sudoku cell click: Row, Col
	ActMove       = "move"       // chess: Row, Col -> ToRow, ToCol
	ActDigit      = "digit"      // sudoku: Digit into the selected cell
	ActDifficulty = "difficulty" // sudoku: Choice
	ActRoll       = "roll"       // ludo
	ActPlayers    = "players"    // ludo: Index = player count
	ActReveal     = "reveal"     // minesweeper: Row, Col
	ActFlag       = "flag"       // minesweeper: Row, Col
	ActClick      = "click"      // minesweeper: Row, Col through the current mode
	ActMode       = "mode"       // minesweeper: toggle reveal/flag
	ActFlip       = "flip"       // memory: Index
	ActResolve    = "resolve"    // memory: flip a mismatched pair back
	ActGuess      = "guess"      // hangman: Letter
	ActChoose     = "choose"     // quiz: Choice
	ActAdvance    = "advance"    // quiz: start the next round
)

// Action is the UI's request to change a game. Only the fields relevant to
// Type are read.
type Action struct {
	Type   string `json:"type"`
	Index  int    `json:"index,omitempty"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
	ToRow  int    `json:"toRow,omitempty"`
	ToCol  int    `json:"toCol,omitempty"`
	Digit  int    `json:"digit,omitempty"`
	Letter string `json:"letter,omitempty"`
	Choice string `json:"choice,omitempty"`
}

// Config carries construction options. Zero values select each game's defaults.
type Config struct {
	Difficulty string `json:"difficulty,omitempty"` // sudoku: easy|medium|hard
	Players    int    `json:"players,omitempty"`    // ludo: 2..4
	Rows       int    `json:"rows,omitempty"`       // minesweeper
	Cols       int    `json:"cols,omitempty"`       // minesweeper
	Mines      int    `json:"mines,omitempty"`      // minesweeper
	Pairs      int    `json:"pairs,omitempty"`      // memory: distinct symbols
	Word       string `json:"word,omitempty"`       // hangman: fixed secret word
	Daily      bool   `json:"daily,omitempty"`      // hangman: date-derived word

	// Delay overrides the built-in timer of the game (memory flip-back, quiz
	// advance, ludo roll animation). Negative disables it.
	Delay time.Duration `json:"delay,omitempty"`
}

// DelayOr resolves Config.Delay against a game's default.
func (c Config) DelayOr(def time.Duration) time.Duration {
	switch {
	case c.Delay < 0:
		return 0
	case c.Delay == 0:
		return def
	default:
		return c.Delay
	}
}

// Error is a sentinel error type for construction failures.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownKind   Error = "unknown game kind"
	ErrInvalidConfig Error = "invalid game config"
)
