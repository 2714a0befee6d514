package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"chesscore/board"
	"chesscore/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	movesFlag := flag.String("moves", "", "space separated UCI moves played from the initial position first")
	workersFlag := flag.Int("workers", 1, "goroutines splitting the root moves")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	p := board.NewGame()
	for _, s := range strings.Fields(*movesFlag) {
		m, err := p.ParseMove(s)
		if err != nil {
			log.Fatalf("bad -moves: %v", err)
		}
		p = p.ApplyMove(m)
	}

	depth := *depthFlag
	repeat := *repeatFlag

	fmt.Printf("searchbench: moves=%q depth=%d repeat=%d workers=%d\n", *movesFlag, depth, repeat, *workersFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		iterStart := time.Now()
		r := engine.SearchParallel(p, depth, *workersFlag)
		iterElapsed := time.Since(iterStart)
		totalNodes += r.Nodes

		if !r.Found {
			fmt.Printf("iteration %d: no legal move (%s)  time=%v\n", i+1, p.Status(), iterElapsed)
			continue
		}
		fmt.Printf("iteration %d: bestmove %v score=%d nodes=%d  time=%v\n", i+1, r.Move, r.Score, r.Nodes, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nps: %.0f\n", totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
