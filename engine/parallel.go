package engine

import (
	"sync"
	"sync/atomic"

	"chesscore/board"
)

// SearchParallel splits the root moves over workers goroutines. Each root move
// is searched with its own full window, so the chosen move and score match
// Search at the same depth; only the node count differs. workers <= 1 runs
// the sequential search.
func SearchParallel(p board.Position, depth, workers int) Result {
	if workers <= 1 {
		return Search(p, depth)
	}
	if depth < 1 {
		depth = 1
	}

	res := Result{Depth: depth}
	moves := OrderedMoves(p)
	if len(moves) == 0 {
		res.Score = terminalScore(p)
		res.Nodes = 1
		return res
	}

	var nodes atomic.Uint64
	nodes.Add(1)
	scores := make([]int, len(moves))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(workers, len(moves)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := &searcher{}
			for i := range jobs {
				scores[i] = s.minimax(p.ApplyMove(moves[i]), depth-1, -Infinity, Infinity)
			}
			nodes.Add(s.nodes)
		}()
	}
	for i := range moves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	maximizing := p.SideToMove() == board.White
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for i, score := range scores {
		if improves(score, best, maximizing) {
			best = score
			res.Move = moves[i]
			res.Found = true
		}
	}
	res.Score = best
	res.Nodes = nodes.Load()
	return res
}
