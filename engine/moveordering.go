package engine

import (
	"cmp"

	"golang.org/x/exp/slices"

	"chesscore/board"
)

type move struct {
	move  board.Move
	score int
}

// victimValue is the material value of the piece m captures, 0 for quiet moves.
func victimValue(p board.Position, m board.Move) int {
	if m.IsEnPassant() {
		return PieceValue[board.PieceTypePawn]
	}
	return PieceValue[p.PieceAt(m.To()).Type()]
}

// orderMoves sorts moves in place by descending victim value (MVV). The sort
// is stable, so equally scored moves keep generation order.
func orderMoves(p board.Position, moves []board.Move) {
	scored := make([]move, len(moves))
	for i, m := range moves {
		scored[i] = move{move: m, score: victimValue(p, m)}
	}
	slices.SortStableFunc(scored, func(a, b move) int {
		return cmp.Compare(b.score, a.score)
	})
	for i := range scored {
		moves[i] = scored[i].move
	}
}

// OrderedMoves returns the legal moves of the side to move in search order.
func OrderedMoves(p board.Position) []board.Move {
	moves := p.AllLegalMoves()
	orderMoves(p, moves)
	return moves
}
