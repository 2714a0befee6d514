package board

import "strings"

// Position is an immutable snapshot of a game. Every method has a value
// receiver; ApplyMove returns a fresh Position and leaves its receiver alone.
// Copying a Position is a plain value copy: the grid is an array and the
// history ledgers are persistent lists that are only ever extended.
type Position struct {
	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	history  *ledger[Move]
	captured [2]*ledger[PieceType]
}

// ledger is an append-only persistent list. push never touches the receiver,
// so positions that share a prefix of moves never observe each other's tail.
type ledger[T any] struct {
	item T
	prev *ledger[T]
	size int
}

func (l *ledger[T]) push(v T) *ledger[T] {
	n := 1
	if l != nil {
		n = l.size + 1
	}
	return &ledger[T]{item: v, prev: l, size: n}
}

func (l *ledger[T]) len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// slice returns the items oldest first.
func (l *ledger[T]) slice() []T {
	out := make([]T, l.len())
	for i, n := len(out)-1, l; n != nil; i, n = i-1, n.prev {
		out[i] = n.item
	}
	return out
}

// NewGame returns the standard initial position with White to move.
func NewGame() Position {
	p := Position{
		sideToMove:      White,
		castlingRights:  CastlingAll,
		enPassantSquare: NoSquare,
		fullmoveNumber:  1,
	}
	backRank := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for file, pt := range backRank {
		p.pieces[NewSquare(file, 0)] = PieceFromType(White, pt)
		p.pieces[NewSquare(file, 1)] = WhitePawn
		p.pieces[NewSquare(file, 6)] = BlackPawn
		p.pieces[NewSquare(file, 7)] = PieceFromType(Black, pt)
	}
	return p
}

// PieceAt returns the piece on a square, or NoPiece for empty and off-board squares.
func (p Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.pieces[sq]
}

// SideToMove reports which side is to play.
func (p Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the rights still held by both sides.
func (p Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantTarget returns the square skipped by the last double pawn push.
// Targets only exist on the third and sixth ranks, so the zero Position has none.
func (p Position) EnPassantTarget() (Square, bool) {
	ep := p.enPassantSquare
	if !ep.Valid() || (ep.Rank() != 2 && ep.Rank() != 5) {
		return NoSquare, false
	}
	return ep, true
}

func (p Position) enPassantAt(sq Square) bool {
	ep, ok := p.EnPassantTarget()
	return ok && ep == sq
}

// HalfMoveClock counts half-moves since the last pawn move or capture.
func (p Position) HalfMoveClock() int { return p.halfmoveClock }

// FullMoveNumber returns the full move counter (incremented after Black's move).
func (p Position) FullMoveNumber() int { return p.fullmoveNumber }

// History returns the moves applied since the position was set up, oldest first.
func (p Position) History() []Move { return p.history.slice() }

// Captured returns the piece types captured by the given side, in capture order.
// Colors other than White and Black have captured nothing.
func (p Position) Captured(by Color) []PieceType {
	if by != White && by != Black {
		return nil
	}
	return p.captured[by].slice()
}

// KingSquare returns the square of the given side's king, or NoSquare.
func (p Position) KingSquare(c Color) Square {
	king := PieceFromType(c, PieceTypeKing)
	for sq := A1; sq <= H8; sq++ {
		if p.pieces[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// String draws the board from White's side using piece glyphs.
func (p Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteString(PieceGlyph(p.pieces[NewSquare(file, rank)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
