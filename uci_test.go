package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runUCI(t *testing.T, script ...string) []string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(strings.Join(script, "\n")), &out)
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestUCIHandshake(t *testing.T) {
	lines := runUCI(t, "uci", "isready", "quit", "isready")
	require.NotEmpty(t, lines)
	assert.Equal(t, "id name chesscore", lines[0])
	assert.Contains(t, lines, "uciok")
	// nothing after quit is processed
	assert.Equal(t, "readyok", lines[len(lines)-1])
	assert.Equal(t, 1, strings.Count(strings.Join(lines, "\n"), "readyok"))
}

func TestUCIGoReturnsBestMove(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4 d7d5", "go depth 2")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "info depth 2 score cp "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "bestmove "), lines[1])
}

func TestUCIBestMoveNoneWhenMated(t *testing.T) {
	lines := runUCI(t, "position startpos moves f2f3 e7e5 g2g4 d8h4", "go depth 3")
	assert.Equal(t, []string{"bestmove (none)"}, lines)
}

func TestUCIFindsMate(t *testing.T) {
	lines := runUCI(t, "position startpos moves f2f3 e7e5 g2g4", "setoption name Threads value 4", "go depth 2")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "score cp 99999")
	assert.Equal(t, "bestmove d8h4", lines[1])
}

func TestUCIPositionErrors(t *testing.T) {
	lines := runUCI(t,
		"position fen 8/8/8/8/8/8/8/8 w - - 0 1",
		"position startpos moves e2e4 e2e4",
		"position",
		"frobnicate",
	)
	require.Len(t, lines, 4)
	assert.Equal(t, "info string fen positions are not supported", lines[0])
	assert.Contains(t, lines[1], "illegal move")
	assert.Equal(t, "info string Malformed position command", lines[2])
	assert.Equal(t, "info string Unknown command: frobnicate", lines[3])
}

func TestUCIDiagramEvalAndUndo(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4", "eval", "undo", "eval", "undo", "d")
	assert.Equal(t, "info string eval 40", lines[0])
	assert.Equal(t, "info string eval 0", lines[1])
	assert.Equal(t, "info string nothing to undo", lines[2])
	assert.Equal(t, "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜", lines[3])
	assert.Equal(t, "side white castling KQkq halfmove 0 fullmove 1 status ongoing result *", lines[len(lines)-1])
}

func TestParseGo(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 5, parseGo(&out, []string{"wtime", "1000", "btime", "1000", "depth", "5"}))
	assert.Equal(t, defaultDepth, parseGo(&out, []string{"depth", "x"}))
	assert.Equal(t, defaultDepth, parseGo(&out, nil))
	assert.Contains(t, out.String(), "could not convert depth")
}

func BenchmarkUCIGoDepth3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		uciLoop(strings.NewReader("position startpos\ngo depth 3\n"), &out)
	}
}
