package board

import "github.com/pkg/errors"

// ErrIllegalMove is returned by Play for moves LegalMoves would not produce.
var ErrIllegalMove = errors.New("illegal move")

// ApplyMove returns the position after m. The receiver is never modified.
//
// m is expected to come from LegalMoves. Moves with off-board squares or an
// empty source square return the position unchanged; other malformed moves
// yield an unspecified but well-formed Position. Use Play for checked input.
func (p Position) ApplyMove(m Move) Position {
	from, to := m.From(), m.To()
	if !from.Valid() || !to.Valid() || p.pieces[from] == NoPiece {
		return p
	}
	moving := p.pieces[from]
	next, captured := p.relocate(m)

	next.castlingRights = p.castlingRights &^ (castlingMask[from] | castlingMask[to])

	next.enPassantSquare = NoSquare
	if moving.Type() == PieceTypePawn && abs(to.Rank()-from.Rank()) == 2 {
		next.enPassantSquare = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	if moving.Type() == PieceTypePawn || captured != NoPiece {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock = p.halfmoveClock + 1
	}

	if captured != NoPiece {
		mover := moving.Color()
		next.captured[mover] = p.captured[mover].push(captured.Type())
	}

	next.sideToMove = p.sideToMove.Other()
	if p.sideToMove == Black {
		next.fullmoveNumber = p.fullmoveNumber + 1
	}
	next.history = p.history.push(m)
	return next
}

// relocate performs the piece placement part of a move on a copy of p:
// the moving piece (promoted if needed), the en passant victim and the
// castling rook. It returns the copy and the captured piece, if any.
func (p Position) relocate(m Move) (Position, Piece) {
	from, to := m.From(), m.To()
	next := p
	moving := next.pieces[from]
	captured := next.pieces[to]

	next.pieces[from] = NoPiece
	if pt, ok := m.Promotion(); ok {
		moving = PieceFromType(moving.Color(), pt)
	}
	next.pieces[to] = moving

	// The victim sits behind the target square: same file, source rank.
	if m.IsEnPassant() {
		victim := NewSquare(to.File(), from.Rank())
		captured = next.pieces[victim]
		next.pieces[victim] = NoPiece
	}

	if side, ok := m.CastleSide(); ok {
		rookFrom, rookTo := castleRookSquares(moving.Color(), side)
		next.pieces[rookTo] = next.pieces[rookFrom]
		next.pieces[rookFrom] = NoPiece
	}
	return next, captured
}

// leavesKingAttacked reports whether playing m exposes the mover's king.
// Only placement matters for the answer, so the ledgers are left alone.
func (p Position) leavesKingAttacked(m Move) bool {
	c := p.pieces[m.From()].Color()
	next, _ := p.relocate(m)
	return next.InCheck(c)
}

// Play applies m after checking that it is legal in p.
func (p Position) Play(m Move) (Position, error) {
	if !m.From().Valid() || !m.To().Valid() {
		return p, errors.Wrapf(ErrSquareOutOfRange, "play %d->%d", m.From(), m.To())
	}
	for _, legal := range p.LegalMoves(m.From()) {
		if legal == m {
			return p.ApplyMove(m), nil
		}
	}
	return p, errors.Wrapf(ErrIllegalMove, "play %s", m)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
