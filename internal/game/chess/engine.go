// internal/game/chess/engine.go
//
// Mini-chess engine: wraps the pure State with the click-driven selection
// protocol used by the UI.
//
// Selection protocol ("select" actions):
//   - No selection: clicking an own piece selects it; anything else is ignored.
//   - Clicking the selected square again deselects it.
//   - Clicking any other square attempts the move. Valid or not, the
//     selection is cleared; an invalid attempt sets the "Invalid move" message.
//
// A "move" action attempts from->to directly without touching selection.

package chess

import "github.com/akj2003/GamingHub/internal/game"

// MsgInvalidMove is attached to rejected move attempts.
const MsgInvalidMove = "Invalid move"

// Game adapts State to game.Engine. Selection and Message are presentation
// state and carry no invariants.
type Game struct {
	state    State
	selected *Square
	message  string
}

// New starts a game from the initial layout.
func New() *Game {
	return &Game{state: NewState()}
}

// NewFromState starts a game from an arbitrary position.
func NewFromState(s State) *Game {
	return &Game{state: s}
}

// State returns the current state by value.
func (g *Game) State() State { return g.state }

// Selected returns the selected square, if any.
func (g *Game) Selected() (Square, bool) {
	if g.selected == nil {
		return Square{}, false
	}
	return *g.selected, true
}

func (g *Game) Kind() game.Kind { return game.KindChess }

func (g *Game) Apply(a game.Action) game.Result {
	if g.state.Winner != "" {
		return game.Ignore()
	}
	switch a.Type {
	case game.ActSelect:
		return g.click(Square{Row: a.Row, Col: a.Col})
	case game.ActMove:
		return g.move(Square{Row: a.Row, Col: a.Col}, Square{Row: a.ToRow, Col: a.ToCol})
	default:
		return game.Ignore()
	}
}

func (g *Game) click(sq Square) game.Result {
	if !sq.InBounds(Size, Size) {
		return game.Ignore()
	}
	if g.selected == nil {
		if !IsOwnPiece(g.state.Board.At(sq), g.state.Turn) {
			return game.Ignore()
		}
		g.selected = &sq
		g.message = ""
		return game.Accept("")
	}
	from := *g.selected
	g.selected = nil
	if from == sq {
		g.message = ""
		return game.Accept("")
	}
	return g.move(from, sq)
}

func (g *Game) move(from, to Square) game.Result {
	if !from.InBounds(Size, Size) || !to.InBounds(Size, Size) {
		return game.Ignore()
	}
	next, ok := AttemptMove(g.state, from, to)
	if !ok {
		g.message = MsgInvalidMove
		return game.Reject(MsgInvalidMove)
	}
	g.state = next
	g.message = ""
	return game.Accept("")
}

func (g *Game) Terminal() game.Terminal {
	if g.state.Winner != "" {
		return game.Terminal{Status: game.StatusWon, Winner: string(g.state.Winner)}
	}
	return game.Ongoing
}

func (g *Game) Reset() {
	g.state = NewState()
	g.selected = nil
	g.message = ""
}

// View is the player-facing snapshot.
type View struct {
	Board    [Size][Size]Piece `json:"board"`
	Turn     Color             `json:"turn"`
	Winner   Color             `json:"winner,omitempty"`
	Selected *Square           `json:"selected,omitempty"`
	Message  string            `json:"message,omitempty"`
}

func (g *Game) View() any {
	v := View{
		Board:   g.state.Board,
		Turn:    g.state.Turn,
		Winner:  g.state.Winner,
		Message: g.message,
	}
	if g.selected != nil {
		sel := *g.selected
		v.Selected = &sel
	}
	return v
}
