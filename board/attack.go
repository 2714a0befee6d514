package board

// Offsets are {file, rank} deltas.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Rook directions: N, S, E, W
var rookDirections = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Bishop directions: NE, NW, SE, SW
var bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// pawnDirection is the rank delta of a pawn push for the given side.
func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// IsSquareAttacked reports whether the given square is attacked by the given
// color, regardless of whose turn it is.
func (p Position) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	file, rank := sq.File(), sq.Rank()

	// Pawns attack diagonally forward, so look one rank behind sq from their point of view.
	pawn := PieceFromType(by, PieceTypePawn)
	for _, df := range [2]int{-1, 1} {
		if s := NewSquare(file+df, rank-pawnDirection(by)); s != NoSquare && p.pieces[s] == pawn {
			return true
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, o := range knightOffsets {
		if s := NewSquare(file+o[0], rank+o[1]); s != NoSquare && p.pieces[s] == knight {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, o := range kingOffsets {
		if s := NewSquare(file+o[0], rank+o[1]); s != NoSquare && p.pieces[s] == king {
			return true
		}
	}

	queen := PieceFromType(by, PieceTypeQueen)
	if p.firstOnRays(file, rank, rookDirections[:], PieceFromType(by, PieceTypeRook), queen) {
		return true
	}
	return p.firstOnRays(file, rank, bishopDirections[:], PieceFromType(by, PieceTypeBishop), queen)
}

// firstOnRays walks each direction from (file, rank) and reports whether the
// first occupied square holds one of the two given sliders.
func (p Position) firstOnRays(file, rank int, dirs [][2]int, a, b Piece) bool {
	for _, d := range dirs {
		for f, r := file+d[0], rank+d[1]; ; f, r = f+d[0], r+d[1] {
			s := NewSquare(f, r)
			if s == NoSquare {
				break
			}
			if occ := p.pieces[s]; occ != NoPiece {
				if occ == a || occ == b {
					return true
				}
				break
			}
		}
	}
	return false
}

// InCheck reports whether the specified color's king is currently attacked.
func (p Position) InCheck(color Color) bool {
	ks := p.KingSquare(color)
	if ks == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ks, color.Other())
}
