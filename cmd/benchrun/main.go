package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

type step struct {
	label string
	args  []string
	// fatal steps stop the run when they fail
	fatal bool
}

var steps = []step{
	{"benchmarks", []string{"test", "./board", "./engine", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"}, true},
	{"perft initial 3", []string{"run", "./cmd/perft", "-depth", "3", "-label", "Initial"}, false},
	{"perft initial 4", []string{"run", "./cmd/perft", "-depth", "4", "-label", "Initial"}, false},
	{"perft initial 5", []string{"run", "./cmd/perft", "-depth", "5", "-label", "Initial"}, false},
	// Open Sicilian after 1.e4 c5 2.Nf3 d6 3.d4 cxd4 4.Nxd4 Nf6 5.Nc3
	{"perft sicilian 3", []string{"run", "./cmd/perft",
		"-moves", "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3",
		"-depth", "3", "-label", "Sicilian"}, false},
	{"search", []string{"run", "./cmd/searchbench", "-depth", "4", "-workers", "4"}, false},
}

// goTool runs the go command with output passed straight through.
func goTool(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return errors.Wrapf(cmd.Run(), "go %s", args[0])
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	for i, s := range steps {
		if i == 1 {
			fmt.Println("\nPerft Performance:")
			fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
		}
		if s.label == "search" {
			fmt.Println("\nSearch:")
		}
		if err := goTool(s.args...); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.label, err)
			if !s.fatal {
				continue
			}
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				os.Exit(ee.ExitCode())
			}
			os.Exit(1)
		}
	}
}
