package engine

import "chesscore/board"

// FlipView maps a square to its mirror across the board's horizontal axis.
// The piece-square tables below are written rank 8 first, so White looks
// its squares up through FlipView and Black indexes them directly.
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// PieceValue is the material value of each piece type in centipawns.
var PieceValue = [7]int{
	board.PieceTypeNone:   0,
	board.PieceTypePawn:   100,
	board.PieceTypeKnight: 320,
	board.PieceTypeBishop: 330,
	board.PieceTypeRook:   500,
	board.PieceTypeQueen:  900,
	board.PieceTypeKing:   20000,
}

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// Middlegame table; there is no phase interpolation.
var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// Rooks and queens carry material only.
var pieceSquareTables = [7]*[64]int{
	board.PieceTypePawn:   &pawnTable,
	board.PieceTypeKnight: &knightTable,
	board.PieceTypeBishop: &bishopTable,
	board.PieceTypeKing:   &kingTable,
}

// PositionalBonus returns the piece-square bonus for pc standing on sq,
// from the owner's point of view.
func PositionalBonus(pc board.Piece, sq board.Square) int {
	table := pieceSquareTables[pc.Type()]
	if table == nil || !sq.Valid() {
		return 0
	}
	if pc.Color() == board.White {
		return table[FlipView[sq]]
	}
	return table[sq]
}

// Evaluate scores p in centipawns from White's point of view: material plus
// piece-square bonus, summed over both sides.
func Evaluate(p board.Position) int {
	var score int
	for sq := board.A1; sq <= board.H8; sq++ {
		pc := p.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		v := PieceValue[pc.Type()] + PositionalBonus(pc, sq)
		if pc.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
