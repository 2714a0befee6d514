package board

// MoveKind tags which variant a Move is.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MovePromotion
	MoveCastle
	MoveEnPassant
)

func (k MoveKind) String() string {
	switch k {
	case MovePromotion:
		return "promotion"
	case MoveCastle:
		return "castle"
	case MoveEnPassant:
		return "en passant"
	}
	return "normal"
}

// CastleSide selects the wing for a castling move.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

// Move describes a transition between two positions. Fields are only reachable
// through the constructors, so a promotion never carries a castle side and an
// en passant capture never carries a promotion piece.
//
// Move is comparable and can be used as a map key.
type Move struct {
	from   Square
	to     Square
	kind   MoveKind
	promo  PieceType
	castle CastleSide
}

// NewMove constructs a plain move or capture.
func NewMove(from, to Square) Move {
	return Move{from: from, to: to, kind: MoveNormal}
}

// NewPromotion constructs a pawn move to the far rank that becomes pt. Only
// knight, bishop, rook and queen are promotion targets; any other pt yields a
// normal move.
func NewPromotion(from, to Square, pt PieceType) Move {
	switch pt {
	case PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		return Move{from: from, to: to, kind: MovePromotion, promo: pt}
	}
	return NewMove(from, to)
}

// NewEnPassant constructs an en passant capture landing on the target square.
func NewEnPassant(from, to Square) Move {
	return Move{from: from, to: to, kind: MoveEnPassant}
}

// NewCastle constructs the king move for castling on the given wing.
func NewCastle(c Color, side CastleSide) Move {
	rank := 0
	if c == Black {
		rank = 7
	}
	to := NewSquare(6, rank)
	if side == QueenSide {
		to = NewSquare(2, rank)
	}
	return Move{from: NewSquare(4, rank), to: to, kind: MoveCastle, castle: side}
}

// From returns the source square of the move.
func (m Move) From() Square { return m.from }

// To returns the destination square of the move.
func (m Move) To() Square { return m.to }

// Kind returns the move variant.
func (m Move) Kind() MoveKind { return m.kind }

// Promotion returns the promotion piece type for promotion moves.
func (m Move) Promotion() (PieceType, bool) {
	if m.kind != MovePromotion {
		return PieceTypeNone, false
	}
	return m.promo, true
}

// CastleSide returns the wing for castling moves.
func (m Move) CastleSide() (CastleSide, bool) {
	if m.kind != MoveCastle {
		return NoCastle, false
	}
	return m.castle, true
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.kind == MoveEnPassant }

// String produces the UCI form of the move (e.g. "e2e4", "e7e8q", "e1g1").
func (m Move) String() string {
	s := m.from.String() + m.to.String()
	if pt, ok := m.Promotion(); ok {
		s += pt.String()
	}
	return s
}

// castleRookSquares returns the rook's start and end squares for a castle.
func castleRookSquares(c Color, side CastleSide) (from, to Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if side == QueenSide {
		return NewSquare(0, rank), NewSquare(3, rank)
	}
	return NewSquare(7, rank), NewSquare(5, rank)
}
