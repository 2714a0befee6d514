package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/hashicorp/go-multierror"
)

func main() {
	games := flag.Int("games", 4, "number of games to play")
	depth := flag.Int("depth", 2, "search depth in plies")
	maxPlies := flag.Int("maxplies", 200, "stop a game after this many plies")
	randomPlies := flag.Int("randomplies", 4, "opening plies chosen at random")
	seed := flag.Int64("seed", 1, "random seed for the opening plies")
	workers := flag.Int("workers", 1, "goroutines splitting the root moves")
	flag.Parse()

	if *depth <= 0 {
		log.Fatalf("depth must be positive, got %d", *depth)
	}

	a := &Arena{
		r:           rand.New(rand.NewSource(*seed)),
		logger:      log.New(os.Stdout, "selfplay: ", log.LstdFlags),
		depth:       *depth,
		workers:     *workers,
		maxPlies:    *maxPlies,
		randomPlies: *randomPlies,
	}

	var errs error
	for i := 1; i <= *games; i++ {
		if err := a.Play(i); err != nil {
			a.logger.Printf("game %d: %v", i, err)
			errs = multierror.Append(errs, err)
		}
	}
	a.logger.Printf("white %d, black %d, draws %d, unfinished %d", a.WhiteWins, a.BlackWins, a.Draws, a.Unfinished)
	if errs != nil {
		log.Fatal(errs)
	}
}
