// internal/game/minesweeper/engine.go
//
// Minesweeper engine.
// Responsibilities:
//   - Build a randomized board at start and on reset.
//   - Reveal (with flood fill) and flag cells, directly or through the
//     click mode toggle.
//   - Loss on opening a mine: every mine is shown, nothing is auto-flagged.
//   - Win when every safe cell is open: remaining mines are auto-flagged.
//   - Freeze reveals, flags and mode changes once the game is won or lost.
//
// Flags are capped at the mine count.

package minesweeper

import (
	"fmt"

	"github.com/akj2003/GamingHub/internal/game"
)

const (
	DefaultSize  = 8
	DefaultMines = 10
	MaxSize      = 30
)

// Mode selects what a "click" action does.
type Mode string

const (
	ModeReveal Mode = "reveal"
	ModeFlag   Mode = "flag"
)

// Game adapts a Board to game.Engine.
type Game struct {
	rows, cols, mines int
	rng               game.Rand

	board  *Board
	mode   Mode
	status game.Status
}

// New validates cfg (8x8 with 10 mines by default) and lays out a board.
func New(cfg game.Config, r game.Rand) (*Game, error) {
	rows, cols, mines := cfg.Rows, cfg.Cols, cfg.Mines
	if rows == 0 {
		rows = DefaultSize
	}
	if cols == 0 {
		cols = DefaultSize
	}
	if mines == 0 {
		mines = DefaultMines
	}
	if rows < 1 || cols < 1 || rows > MaxSize || cols > MaxSize {
		return nil, fmt.Errorf("minesweeper size %dx%d: %w", rows, cols, game.ErrInvalidConfig)
	}
	if mines < 1 || mines >= rows*cols {
		return nil, fmt.Errorf("minesweeper mines %d on %d cells: %w", mines, rows*cols, game.ErrInvalidConfig)
	}
	g := &Game{rows: rows, cols: cols, mines: mines, rng: r}
	g.Reset()
	return g, nil
}

// NewWithBoard starts a game on a prepared board (tests, replays). r lays
// out the boards of later resets.
func NewWithBoard(b *Board, mines int, r game.Rand) *Game {
	return &Game{rows: b.Rows, cols: b.Cols, mines: mines, rng: r, board: b, mode: ModeReveal, status: game.StatusPlaying}
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board { return g.board.Clone() }

// Mode returns the current click mode.
func (g *Game) Mode() Mode { return g.mode }

func (g *Game) Kind() game.Kind { return game.KindMinesweeper }

func (g *Game) Apply(a game.Action) game.Result {
	if g.status != game.StatusPlaying {
		return game.Ignore()
	}
	p := Point{Row: a.Row, Col: a.Col}
	switch a.Type {
	case game.ActReveal:
		return g.reveal(p)
	case game.ActFlag:
		return g.flag(p)
	case game.ActClick:
		if g.mode == ModeFlag {
			return g.flag(p)
		}
		return g.reveal(p)
	case game.ActMode:
		if g.mode == ModeReveal {
			g.mode = ModeFlag
		} else {
			g.mode = ModeReveal
		}
		return game.Accept("")
	default:
		return game.Ignore()
	}
}

func (g *Game) reveal(p Point) game.Result {
	next := g.board.Clone()
	changed, hitMine := next.Reveal(p)
	if !changed {
		return game.Ignore()
	}
	switch {
	case hitMine:
		next.revealMines()
		g.status = game.StatusLost
	case next.Cleared():
		next.flagMines()
		g.status = game.StatusWon
	}
	g.board = next
	return game.Accept("")
}

func (g *Game) flag(p Point) game.Result {
	if !g.board.InBounds(p) {
		return game.Ignore()
	}
	c := g.board.Cells[p.Row][p.Col]
	if !c.Flagged && g.board.Flags() >= g.mines {
		return game.Ignore()
	}
	next := g.board.Clone()
	if !next.ToggleFlag(p) {
		return game.Ignore()
	}
	g.board = next
	return game.Accept("")
}

func (g *Game) Terminal() game.Terminal { return game.Terminal{Status: g.status} }

// Reset lays out a fresh random board of the same dimensions.
func (g *Game) Reset() {
	g.board = NewBoard(g.rows, g.cols, g.mines, g.rng)
	g.mode = ModeReveal
	g.status = game.StatusPlaying
}

// CellView is one cell as the player may see it.
//
//	State: "hidden" | "flagged" | "opened"
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"`
	Mine  bool   `json:"mine,omitempty"`
}

// View is the player-facing snapshot.
type View struct {
	Cells          [][]CellView `json:"cells"`
	Mode           Mode         `json:"mode"`
	Mines          int          `json:"mines"`
	MinesRemaining int          `json:"minesRemaining"`
	Status         game.Status  `json:"status"`
}

func (g *Game) View() any {
	flags := g.board.Flags()
	v := View{
		Cells:          make([][]CellView, g.rows),
		Mode:           g.mode,
		Mines:          g.mines,
		MinesRemaining: g.mines - flags,
		Status:         g.status,
	}
	for r, row := range g.board.Cells {
		v.Cells[r] = make([]CellView, len(row))
		for c, cell := range row {
			cv := CellView{State: "hidden"}
			switch {
			case cell.Revealed:
				cv.State = "opened"
				cv.Mine = cell.Mine
				if !cell.Mine {
					cv.Count = cell.Adjacent
				}
			case cell.Flagged:
				cv.State = "flagged"
			}
			v.Cells[r][c] = cv
		}
	}
	return v
}
