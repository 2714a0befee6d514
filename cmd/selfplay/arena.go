package main

import (
	"log"
	"math/rand"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/game"
)

// Arena plays the engine against itself and has an independent rules
// library referee every move and every result.
type Arena struct {
	r      *rand.Rand
	logger *log.Logger

	depth       int
	workers     int
	maxPlies    int
	randomPlies int // opening plies chosen at random so games differ

	// statistics
	WhiteWins, BlackWins, Draws, Unfinished int
}

// Play plays one game. It returns an error when the referee disagrees with
// a move or with the final result.
func (a *Arena) Play(n int) error {
	g := game.New()
	ref := chess.NewGame()

	for ply := 0; ply < a.maxPlies && !g.Ended(); ply++ {
		if ref.Outcome() != chess.NoOutcome {
			// The referee also applies automatic draws the engine does not know about.
			a.logger.Printf("game %d: referee ends the game at ply %d: %s", n, ply, ref.Method())
			a.Draws++
			return nil
		}

		var m board.Move
		if ply < a.randomPlies {
			legal := g.Position().AllLegalMoves()
			m = legal[a.r.Intn(len(legal))]
		} else {
			res := engine.SearchParallel(g.Position(), a.depth, a.workers)
			if !res.Found {
				return errors.Errorf("game %d ply %d: search found no move in an ongoing game", n, ply)
			}
			m = res.Move
		}

		if err := g.PlayMove(m); err != nil {
			return errors.WithMessagef(err, "game %d ply %d", n, ply)
		}
		if err := refereeMove(ref, m.String()); err != nil {
			return errors.WithMessagef(err, "game %d ply %d", n, ply)
		}
	}

	o, status := g.Outcome()
	switch status {
	case board.Checkmate, board.Stalemate:
		if string(ref.Outcome()) != o.String() {
			return errors.Errorf("game %d: engine says %s (%s), referee says %s (%s)", n, o, status, ref.Outcome(), ref.Method())
		}
	case board.FiftyMoveDraw:
		if err := ref.Draw(chess.FiftyMoveRule); err != nil {
			return errors.Wrapf(err, "game %d: referee refuses the fifty-move draw", n)
		}
	}

	switch o {
	case game.WhiteWon:
		a.WhiteWins++
	case game.BlackWon:
		a.BlackWins++
	case game.Draw:
		a.Draws++
	default:
		a.Unfinished++
	}
	a.logger.Printf("game %d: %s (%s) after %d plies", n, o, status, len(g.Moves()))
	return nil
}

// refereeMove plays the move given in UCI notation on the referee's board.
func refereeMove(ref *chess.Game, uci string) error {
	for _, m := range ref.ValidMoves() {
		if m.String() == uci {
			return ref.Move(m)
		}
	}
	return errors.Errorf("referee rejects move %s", uci)
}
