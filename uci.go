package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/game"
)

const defaultDepth = 4

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// uciLoop reads commands line by line until quit or end of input.
func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	g := game.New()
	workers := 1

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chesscore")
			fmt.Fprintln(out, "id author chesscore developers")
			fmt.Fprintln(out, "option name Threads type spin default 1 min 1 max 64")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			g = game.New()
		case "quit":
			return
		case "stop":
			// searches are synchronous; nothing is running
		case "setoption":
			workers = setOption(out, tokens[1:], workers)
		case "position":
			if next, ok := parsePosition(out, tokens[1:]); ok {
				g = next
			}
		case "go":
			depth := parseGo(out, tokens[1:])
			start := time.Now()
			r := engine.SearchParallel(g.Position(), depth, workers)
			if !r.Found {
				fmt.Fprintln(out, "bestmove (none)")
				continue
			}
			// UCI scores are from the mover's side
			score := r.Score
			if g.Turn() == board.Black {
				score = -score
			}
			fmt.Fprintf(out, "info depth %d score cp %d nodes %d time %d pv %s\n",
				r.Depth, score, r.Nodes, time.Since(start).Milliseconds(), r.Move)
			fmt.Fprintln(out, "bestmove", r.Move)
		case "d":
			p := g.Position()
			fmt.Fprint(out, p)
			o, status := g.Outcome()
			fmt.Fprintf(out, "side %s castling %s halfmove %d fullmove %d status %s result %s\n",
				p.SideToMove(), p.CastlingRights(), p.HalfMoveClock(), p.FullMoveNumber(), status, o)
		case "eval":
			fmt.Fprintln(out, "info string eval", engine.Evaluate(g.Position()))
		case "undo":
			if !g.Undo() {
				fmt.Fprintln(out, "info string nothing to undo")
			}
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// parsePosition handles "startpos [moves ...]". Moves are applied until the
// first one that is not legal.
func parsePosition(out io.Writer, args []string) (*game.Game, bool) {
	if len(args) == 0 {
		fmt.Fprintln(out, "info string Malformed position command")
		return nil, false
	}
	switch strings.ToLower(args[0]) {
	case "startpos":
	case "fen":
		fmt.Fprintln(out, "info string fen positions are not supported")
		return nil, false
	default:
		fmt.Fprintln(out, "info string Invalid position subcommand")
		return nil, false
	}

	g := game.New()
	args = args[1:]
	if len(args) == 0 {
		return g, true
	}
	if strings.ToLower(args[0]) != "moves" {
		fmt.Fprintln(out, "info string Malformed position command")
		return g, true
	}
	for _, moveStr := range args[1:] {
		if err := g.Play(moveStr); err != nil {
			fmt.Fprintln(out, "info string", err)
			break
		}
	}
	return g, true
}

// parseGo returns the requested depth. Clock options are read and ignored.
func parseGo(out io.Writer, args []string) int {
	depth := defaultDepth
	for i := 0; i < len(args); i++ {
		switch tok := strings.ToLower(args[i]); tok {
		case "infinite":
		case "wtime", "btime", "winc", "binc", "movetime", "movestogo":
			i++
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(out, "info string Malformed go command option depth")
				continue
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 1 {
				fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
				continue
			}
			depth = d
		default:
			fmt.Fprintln(out, "info string Unknown go subcommand", tok)
		}
	}
	return depth
}

// setOption handles "setoption name Threads value N".
func setOption(out io.Writer, args []string, workers int) int {
	if len(args) != 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		fmt.Fprintln(out, "info string Malformed setoption command")
		return workers
	}
	if !strings.EqualFold(args[1], "threads") {
		fmt.Fprintln(out, "info string Unknown option", args[1])
		return workers
	}
	n, err := strconv.Atoi(args[3])
	if err != nil || n < 1 {
		fmt.Fprintln(out, "info string Malformed option value", args[3])
		return workers
	}
	return n
}
