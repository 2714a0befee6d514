package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"

	"chesscore/board"
)

func main() {
	depth := flag.Int("depth", 0, "Perft depth (required)")
	moves := flag.String("moves", "", "Space separated UCI moves played from the initial position first")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check every root move against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	line := strings.Fields(*moves)
	p, err := replay(board.NewGame(), line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if bad := verifyDivide(p, line, *depth); bad > 0 {
			fmt.Fprintf(os.Stderr, "%d root moves disagree with dragontoothmg\n", bad)
			os.Exit(1)
		}
		fmt.Println("verify: ok")
		return
	}

	if *divide {
		div := board.PerftDivide(p, *depth)
		// Sort moves for stable output
		type kv struct {
			m string
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m.String(), n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m < arr[j].m })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(p, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func replay(p board.Position, moves []string) (board.Position, error) {
	for i, s := range moves {
		m, err := p.ParseMove(s)
		if err != nil {
			return p, errors.WithMessagef(err, "move %d", i+1)
		}
		p = p.ApplyMove(m)
	}
	return p, nil
}

// verifyDivide compares the divide counts of p with those dragontoothmg
// computes for the same move sequence and prints every disagreement.
func verifyDivide(p board.Position, line []string, depth int) int {
	ref := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	for _, s := range line {
		legal := ref.GenerateLegalMoves()
		for i := range legal {
			if legal[i].String() == s {
				ref.Apply(legal[i])
				break
			}
		}
	}

	want := make(map[string]uint64)
	legal := ref.GenerateLegalMoves()
	for i := range legal {
		undo := ref.Apply(legal[i])
		want[legal[i].String()] = referencePerft(&ref, depth-1)
		undo()
	}

	bad := 0
	got := board.PerftDivide(p, depth)
	for m, n := range got {
		s := m.String()
		if w, ok := want[s]; !ok {
			fmt.Printf("%s: %d, not legal for dragontoothmg\n", s, n)
			bad++
		} else if w != n {
			fmt.Printf("%s: %d, dragontoothmg %d\n", s, n, w)
			bad++
		}
		delete(want, s)
	}
	for s, w := range want {
		fmt.Printf("%s: missing, dragontoothmg %d\n", s, w)
		bad++
	}
	return bad
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for i := range moves {
		undo := b.Apply(moves[i])
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}
