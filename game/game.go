// Package game keeps the record of one game for a user interface: the stack
// of positions reached so far, undo, and the result once the game is over.
package game

import (
	"github.com/pkg/errors"

	"chesscore/board"
	"chesscore/engine"
)

// ErrGameOver is returned when a move is played after the game has ended.
var ErrGameOver = errors.New("game is over")

// Outcome is the result of a game.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	WhiteWon
	BlackWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Game is a sequence of positions starting from a set-up position. The zero
// value is not usable; call New or FromPosition.
type Game struct {
	positions []board.Position
}

// New starts a game from the standard initial position.
func New() *Game {
	return FromPosition(board.NewGame())
}

// FromPosition starts a game from p.
func FromPosition(p board.Position) *Game {
	return &Game{positions: []board.Position{p}}
}

// Position returns the current position.
func (g *Game) Position() board.Position {
	return g.positions[len(g.positions)-1]
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color { return g.Position().SideToMove() }

// Moves returns the moves played since the start position, oldest first.
func (g *Game) Moves() []board.Move {
	moves := make([]board.Move, 0, len(g.positions)-1)
	for i := 1; i < len(g.positions); i++ {
		h := g.positions[i].History()
		moves = append(moves, h[len(h)-1])
	}
	return moves
}

// Play parses a UCI move ("e2e4", "e7e8q") and plays it.
func (g *Game) Play(move string) error {
	if g.Ended() {
		return errors.Wrapf(ErrGameOver, "play %s", move)
	}
	m, err := g.Position().ParseMove(move)
	if err != nil {
		return err
	}
	g.positions = append(g.positions, g.Position().ApplyMove(m))
	return nil
}

// PlayMove plays m after checking it is legal.
func (g *Game) PlayMove(m board.Move) error {
	if g.Ended() {
		return errors.Wrapf(ErrGameOver, "play %s", m)
	}
	next, err := g.Position().Play(m)
	if err != nil {
		return err
	}
	g.positions = append(g.positions, next)
	return nil
}

// Think searches the current position and plays the chosen move. It returns
// the search result; Found is false when the game is already over, including
// draws where moves remain.
func (g *Game) Think(depth, workers int) engine.Result {
	if g.Ended() {
		return engine.Result{Depth: max(depth, 1)}
	}
	r := engine.SearchParallel(g.Position(), depth, workers)
	if r.Found {
		g.positions = append(g.positions, g.Position().ApplyMove(r.Move))
	}
	return r
}

// Undo takes back the last move. It reports false at the start position.
func (g *Game) Undo() bool {
	if len(g.positions) == 1 {
		return false
	}
	g.positions = g.positions[:len(g.positions)-1]
	return true
}

// Reset returns to the start position.
func (g *Game) Reset() {
	g.positions = g.positions[:1]
}

// Clone returns an independent copy of the game record.
func (g *Game) Clone() *Game {
	positions := make([]board.Position, len(g.positions))
	copy(positions, g.positions)
	return &Game{positions: positions}
}

// Ended reports whether the game is over.
func (g *Game) Ended() bool {
	o, _ := g.Outcome()
	return o != NoOutcome
}

// Outcome reports the result and how it came about.
func (g *Game) Outcome() (Outcome, board.Status) {
	p := g.Position()
	switch status := p.Status(); status {
	case board.Checkmate:
		if p.SideToMove() == board.White {
			return BlackWon, status
		}
		return WhiteWon, status
	case board.Stalemate, board.FiftyMoveDraw:
		return Draw, status
	default:
		return NoOutcome, status
	}
}
