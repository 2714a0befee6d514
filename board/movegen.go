package board

// PseudoLegalMoves enumerates the geometrically valid moves of the piece on
// sq. It does not check whether the mover's king is left in check, except for
// castling, which is only generated when the king's path is unattacked.
func (p Position) PseudoLegalMoves(sq Square) []Move {
	return p.appendPseudoLegal(make([]Move, 0, 28), sq)
}

func (p Position) appendPseudoLegal(dst []Move, sq Square) []Move {
	pc := p.PieceAt(sq)
	switch pc.Type() {
	case PieceTypePawn:
		return p.appendPawnMoves(dst, sq, pc.Color())
	case PieceTypeKnight:
		return p.appendStepMoves(dst, sq, pc.Color(), knightOffsets[:])
	case PieceTypeBishop:
		return p.appendSlideMoves(dst, sq, pc.Color(), bishopDirections[:])
	case PieceTypeRook:
		return p.appendSlideMoves(dst, sq, pc.Color(), rookDirections[:])
	case PieceTypeQueen:
		dst = p.appendSlideMoves(dst, sq, pc.Color(), rookDirections[:])
		return p.appendSlideMoves(dst, sq, pc.Color(), bishopDirections[:])
	case PieceTypeKing:
		dst = p.appendStepMoves(dst, sq, pc.Color(), kingOffsets[:])
		return p.appendCastles(dst, sq, pc.Color())
	}
	return dst
}

func (p Position) appendPawnMoves(dst []Move, from Square, c Color) []Move {
	dir := pawnDirection(c)
	startRank, lastRank := 1, 7
	if c == Black {
		startRank, lastRank = 6, 0
	}
	file, rank := from.File(), from.Rank()

	add := func(to Square) {
		if to.Rank() == lastRank {
			for _, pt := range promotionTypes {
				dst = append(dst, NewPromotion(from, to, pt))
			}
			return
		}
		dst = append(dst, NewMove(from, to))
	}

	// Pushes
	if one := NewSquare(file, rank+dir); one != NoSquare && p.pieces[one] == NoPiece {
		add(one)
		if rank == startRank {
			if two := NewSquare(file, rank+2*dir); two != NoSquare && p.pieces[two] == NoPiece {
				dst = append(dst, NewMove(from, two))
			}
		}
	}

	// Captures, including en passant. The target only belongs to the side to move.
	for _, df := range [2]int{-1, 1} {
		to := NewSquare(file+df, rank+dir)
		if to == NoSquare {
			continue
		}
		if target := p.pieces[to]; target != NoPiece {
			if target.Color() != c {
				add(to)
			}
			continue
		}
		if c == p.sideToMove && p.enPassantAt(to) {
			dst = append(dst, NewEnPassant(from, to))
		}
	}
	return dst
}

// appendStepMoves handles single-step pieces (knight and the king's normal moves).
func (p Position) appendStepMoves(dst []Move, from Square, c Color, offsets [][2]int) []Move {
	file, rank := from.File(), from.Rank()
	for _, o := range offsets {
		to := NewSquare(file+o[0], rank+o[1])
		if to == NoSquare {
			continue
		}
		if occ := p.pieces[to]; occ != NoPiece && occ.Color() == c {
			continue
		}
		dst = append(dst, NewMove(from, to))
	}
	return dst
}

func (p Position) appendSlideMoves(dst []Move, from Square, c Color, dirs [][2]int) []Move {
	file, rank := from.File(), from.Rank()
	for _, d := range dirs {
		for f, r := file+d[0], rank+d[1]; ; f, r = f+d[0], r+d[1] {
			to := NewSquare(f, r)
			if to == NoSquare {
				break
			}
			if occ := p.pieces[to]; occ != NoPiece {
				if occ.Color() != c {
					dst = append(dst, NewMove(from, to))
				}
				break
			}
			dst = append(dst, NewMove(from, to))
		}
	}
	return dst
}

// appendCastles adds castling moves when the right is held, the squares
// between king and rook are empty and the king never crosses an attacked square.
func (p Position) appendCastles(dst []Move, from Square, c Color) []Move {
	rank := 0
	if c == Black {
		rank = 7
	}
	if from != NewSquare(4, rank) {
		return dst
	}
	them := c.Other()
	rook := PieceFromType(c, PieceTypeRook)

	for _, side := range [2]CastleSide{KingSide, QueenSide} {
		if !p.castlingRights.Has(castlingRight(c, side)) {
			continue
		}
		rookFrom, _ := castleRookSquares(c, side)
		if p.pieces[rookFrom] != rook {
			continue
		}
		between := []int{5, 6}
		kingPath := []int{4, 5, 6}
		if side == QueenSide {
			between = []int{3, 2, 1}
			kingPath = []int{4, 3, 2}
		}
		empty := true
		for _, f := range between {
			if p.pieces[NewSquare(f, rank)] != NoPiece {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		safe := true
		for _, f := range kingPath {
			if p.IsSquareAttacked(NewSquare(f, rank), them) {
				safe = false
				break
			}
		}
		if safe {
			dst = append(dst, NewCastle(c, side))
		}
	}
	return dst
}

// LegalMoves returns the legal moves of the piece on sq. The result is empty
// when the square is empty or the piece does not belong to the side to move.
func (p Position) LegalMoves(sq Square) []Move {
	pc := p.PieceAt(sq)
	if pc == NoPiece || pc.Color() != p.sideToMove {
		return nil
	}
	return p.appendLegal(nil, sq)
}

// AllLegalMoves returns every legal move for the side to move, square by square from a1.
func (p Position) AllLegalMoves() []Move {
	moves := make([]Move, 0, 64)
	for sq := A1; sq <= H8; sq++ {
		if pc := p.pieces[sq]; pc != NoPiece && pc.Color() == p.sideToMove {
			moves = p.appendLegal(moves, sq)
		}
	}
	return moves
}

// appendLegal simulates every pseudo-legal move of the piece on sq and keeps
// those after which its own king is not attacked.
func (p Position) appendLegal(dst []Move, sq Square) []Move {
	var buf [28]Move
	for _, m := range p.appendPseudoLegal(buf[:0], sq) {
		if !p.leavesKingAttacked(m) {
			dst = append(dst, m)
		}
	}
	return dst
}

// HasLegalMoves reports whether the given color has at least one legal move,
// whether or not it is that color's turn.
func (p Position) HasLegalMoves(c Color) bool {
	var buf [28]Move
	for sq := A1; sq <= H8; sq++ {
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != c {
			continue
		}
		for _, m := range p.appendPseudoLegal(buf[:0], sq) {
			if !p.leavesKingAttacked(m) {
				return true
			}
		}
	}
	return false
}
