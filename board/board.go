package board

// Piece packs a colorless type and a side into one byte.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// promotionTypes lists promotion choices in the order they are generated.
var promotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// String returns the lowercase letter used in move notation ("" for none).
func (pt PieceType) String() string {
	switch pt {
	case PieceTypePawn:
		return "p"
	case PieceTypeKnight:
		return "n"
	case PieceTypeBishop:
		return "b"
	case PieceTypeRook:
		return "r"
	case PieceTypeQueen:
		return "q"
	case PieceTypeKing:
		return "k"
	}
	return ""
}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

var glyphs = [15]string{
	WhitePawn: "♙", WhiteKnight: "♘", WhiteBishop: "♗", WhiteRook: "♖", WhiteQueen: "♕", WhiteKing: "♔",
	BlackPawn: "♟", BlackKnight: "♞", BlackBishop: "♝", BlackRook: "♜", BlackQueen: "♛", BlackKing: "♚",
}

// PieceGlyph returns the display symbol for a piece, or "·" for an empty cell.
func PieceGlyph(p Piece) string {
	if int(p) < len(glyphs) && glyphs[p] != "" {
		return glyphs[p]
	}
	return "·"
}

// String returns the piece glyph.
func (p Piece) String() string { return PieceGlyph(p) }

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	for _, f := range []struct {
		flag CastlingRights
		ch   string
	}{{CastlingWhiteK, "K"}, {CastlingWhiteQ, "Q"}, {CastlingBlackK, "k"}, {CastlingBlackQ, "q"}} {
		if cr.Has(f.flag) {
			s += f.ch
		}
	}
	return s
}

// castlingRight maps a side and wing to its flag.
func castlingRight(c Color, side CastleSide) CastlingRights {
	switch {
	case c == White && side == KingSide:
		return CastlingWhiteK
	case c == White && side == QueenSide:
		return CastlingWhiteQ
	case c == Black && side == KingSide:
		return CastlingBlackK
	case c == Black && side == QueenSide:
		return CastlingBlackQ
	}
	return CastlingNone
}

// castlingMask holds, per square, the rights lost when a move starts or ends there.
// Covers king moves, rooks leaving home and captures on a rook's home square.
var castlingMask = func() (m [64]CastlingRights) {
	m[E1] = CastlingWhiteK | CastlingWhiteQ
	m[H1] = CastlingWhiteK
	m[A1] = CastlingWhiteQ
	m[E8] = CastlingBlackK | CastlingBlackQ
	m[H8] = CastlingBlackK
	m[A8] = CastlingBlackQ
	return m
}()
