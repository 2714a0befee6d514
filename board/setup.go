package board

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Setup describes an arbitrary position. It is how tests build positions and
// how a UI restores one it saved in its own format.
type Setup struct {
	Pieces         map[Square]Piece
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when absent; the zero value a1 is never a valid target
	HalfMoveClock  int
	FullMoveNumber int // 0 is treated as 1
}

// Position builds and validates the position described by s.
func (s Setup) Position() (Position, error) {
	p := Position{
		sideToMove:      s.SideToMove,
		castlingRights:  s.Castling,
		enPassantSquare: NoSquare,
		halfmoveClock:   s.HalfMoveClock,
		fullmoveNumber:  s.FullMoveNumber,
	}
	if p.fullmoveNumber == 0 {
		p.fullmoveNumber = 1
	}
	if s.EnPassant != A1 {
		p.enPassantSquare = s.EnPassant
	}

	var result *multierror.Error
	for sq, pc := range s.Pieces {
		if !sq.Valid() {
			result = multierror.Append(result, errors.Wrapf(ErrSquareOutOfRange, "piece on %d", int(sq)))
			continue
		}
		p.pieces[sq] = pc
	}
	if err := result.ErrorOrNil(); err != nil {
		return Position{}, errors.WithMessage(err, "invalid setup")
	}
	if err := p.Validate(); err != nil {
		return Position{}, errors.WithMessage(err, "invalid setup")
	}
	return p, nil
}

// Validate checks the invariants every reachable position satisfies and
// reports all violations together.
func (p Position) Validate() error {
	var result *multierror.Error

	var kings [2]int
	for sq := A1; sq <= H8; sq++ {
		pc := p.pieces[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Type() == PieceTypeNone || pc.Type() > PieceTypeKing || pc&^(8|7) != 0 {
			result = multierror.Append(result, errors.Errorf("unknown piece code %d on %s", uint8(pc), sq))
			continue
		}
		switch pc.Type() {
		case PieceTypeKing:
			kings[pc.Color()]++
		case PieceTypePawn:
			if sq.Rank() == 0 || sq.Rank() == 7 {
				result = multierror.Append(result, errors.Errorf("%s pawn on back rank %s", pc.Color(), sq))
			}
		}
	}
	for _, c := range [2]Color{White, Black} {
		if kings[c] != 1 {
			result = multierror.Append(result, errors.Errorf("%s has %d kings, want 1", c, kings[c]))
		}
	}

	for _, c := range [2]Color{White, Black} {
		for _, side := range [2]CastleSide{KingSide, QueenSide} {
			if !p.castlingRights.Has(castlingRight(c, side)) {
				continue
			}
			king := NewCastle(c, side).From()
			rook, _ := castleRookSquares(c, side)
			if p.pieces[king] != PieceFromType(c, PieceTypeKing) || p.pieces[rook] != PieceFromType(c, PieceTypeRook) {
				result = multierror.Append(result, errors.Errorf("castling right %s without king and rook at home", castlingRight(c, side)))
			}
		}
	}

	if ep := p.enPassantSquare; ep != NoSquare {
		mover := p.sideToMove.Other()
		wantRank := 2
		if mover == Black {
			wantRank = 5
		}
		pawnSq := NewSquare(ep.File(), ep.Rank()+pawnDirection(mover))
		switch {
		case !ep.Valid() || ep.Rank() != wantRank:
			result = multierror.Append(result, errors.Errorf("en passant target %s on wrong rank", ep))
		case p.pieces[ep] != NoPiece:
			result = multierror.Append(result, errors.Errorf("en passant target %s is occupied", ep))
		case p.pieces[pawnSq] != PieceFromType(mover, PieceTypePawn):
			result = multierror.Append(result, errors.Errorf("no %s pawn in front of en passant target %s", mover, ep))
		}
	}

	if p.halfmoveClock < 0 {
		result = multierror.Append(result, errors.Errorf("negative half-move clock %d", p.halfmoveClock))
	}
	if p.fullmoveNumber < 1 {
		result = multierror.Append(result, errors.Errorf("full-move number %d below 1", p.fullmoveNumber))
	}

	if kings[White] == 1 && kings[Black] == 1 && p.InCheck(p.sideToMove.Other()) {
		result = multierror.Append(result, errors.Errorf("%s is in check but it is %s to move", p.sideToMove.Other(), p.sideToMove))
	}

	return result.ErrorOrNil()
}
