package board

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Status classifies a position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move rule"
	}
	return "ongoing"
}

// IsCheckmate reports whether color is in check with no legal move.
func (p Position) IsCheckmate(color Color) bool {
	return p.InCheck(color) && !p.HasLegalMoves(color)
}

// IsStalemate reports whether color is not in check but has no legal move.
func (p Position) IsStalemate(color Color) bool {
	return !p.InCheck(color) && !p.HasLegalMoves(color)
}

// IsDraw reports a draw by the fifty-move rule or by stalemate of the side to move.
// Repetition and insufficient material are not considered.
func (p Position) IsDraw() bool {
	return p.halfmoveClock >= FiftyMoveLimit || p.IsStalemate(p.sideToMove)
}

// Status reports the terminal state for the side to move. Checkmate takes
// precedence over the fifty-move rule.
func (p Position) Status() Status {
	c := p.sideToMove
	if p.HasLegalMoves(c) {
		if p.halfmoveClock >= FiftyMoveLimit {
			return FiftyMoveDraw
		}
		return Ongoing
	}
	if p.InCheck(c) {
		return Checkmate
	}
	return Stalemate
}
