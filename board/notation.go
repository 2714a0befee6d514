package board

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrBadNotation is returned for move text that is not UCI long algebraic.
var ErrBadNotation = errors.New("bad move notation")

// ParseMove converts a UCI string (e2e4, e7e8q, e1g1) into the matching legal
// move of p. The promotion letter may be given in either case.
func (p Position) ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return Move{}, errors.Wrapf(ErrBadNotation, "parse %q: invalid move length", movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return Move{}, errors.WithMessagef(err, "parse %q", movestr)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return Move{}, errors.WithMessagef(err, "parse %q", movestr)
	}
	promo := PieceTypeNone
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return Move{}, errors.Wrapf(ErrBadNotation, "parse %q: invalid promotion piece", movestr)
		}
	}
	for _, m := range p.LegalMoves(from) {
		pt, _ := m.Promotion()
		if m.To() == to && pt == promo {
			return m, nil
		}
	}
	return Move{}, errors.Wrapf(ErrIllegalMove, "parse %q", movestr)
}
