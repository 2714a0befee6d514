package engine

import "chesscore/board"

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MateScore = 99999
	DrawScore = 0
	Infinity  = MateScore + 1
)

// Result is the outcome of a fixed-depth search.
type Result struct {
	Move  board.Move
	Score int // centipawns, White's point of view
	Nodes uint64
	Depth int
	Found bool // false only when the side to move has no legal move
}

type searcher struct {
	nodes uint64
}

// GetAIMove returns the best move for the side to move at the given depth.
// ok is false when there is no legal move.
func GetAIMove(p board.Position, depth int) (m board.Move, ok bool) {
	r := Search(p, depth)
	return r.Move, r.Found
}

// Search runs a minimax search with alpha-beta pruning. White maximizes,
// Black minimizes. Depths below 1 are searched at depth 1.
func Search(p board.Position, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	s := &searcher{}
	s.nodes++

	res := Result{Depth: depth}
	moves := OrderedMoves(p)
	if len(moves) == 0 {
		res.Score = terminalScore(p)
		res.Nodes = s.nodes
		return res
	}

	maximizing := p.SideToMove() == board.White
	alpha, beta := -Infinity, Infinity
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range moves {
		score := s.minimax(p.ApplyMove(m), depth-1, alpha, beta)
		if improves(score, best, maximizing) {
			best = score
			res.Move = m
			res.Found = true
		}
		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
	}
	res.Score = best
	res.Nodes = s.nodes
	return res
}

func (s *searcher) minimax(p board.Position, depth, alpha, beta int) int {
	s.nodes++
	if depth == 0 {
		return Evaluate(p)
	}

	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return terminalScore(p)
	}
	if p.HalfMoveClock() >= board.FiftyMoveLimit {
		return DrawScore
	}
	orderMoves(p, moves)

	if p.SideToMove() == board.White {
		best := -Infinity
		for _, m := range moves {
			best = max(best, s.minimax(p.ApplyMove(m), depth-1, alpha, beta))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		best = min(best, s.minimax(p.ApplyMove(m), depth-1, alpha, beta))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// terminalScore scores a position without legal moves: mate counts against
// the side to move, stalemate is a draw.
func terminalScore(p board.Position) int {
	side := p.SideToMove()
	if !p.InCheck(side) {
		return DrawScore
	}
	if side == board.White {
		return -MateScore
	}
	return MateScore
}

func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
