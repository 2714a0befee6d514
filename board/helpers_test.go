package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chesscore/board"
)

var pieceLetters = map[rune]board.Piece{
	'P': board.WhitePawn, 'N': board.WhiteKnight, 'B': board.WhiteBishop,
	'R': board.WhiteRook, 'Q': board.WhiteQueen, 'K': board.WhiteKing,
	'p': board.BlackPawn, 'n': board.BlackKnight, 'b': board.BlackBishop,
	'r': board.BlackRook, 'q': board.BlackQueen, 'k': board.BlackKing,
}

// layout reads a rank-8-first placement diagram ("4k3/8/.../4K3") into a piece map.
func layout(t testing.TB, rows string) map[board.Square]board.Piece {
	t.Helper()
	pieces := make(map[board.Square]board.Piece)
	rank, file := 7, 0
	for _, ch := range rows {
		switch {
		case ch == '/':
			require.Equal(t, 8, file, "rank %d is not 8 files wide", rank+1)
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			pc, ok := pieceLetters[ch]
			require.True(t, ok, "unknown piece letter %q", ch)
			pieces[board.NewSquare(file, rank)] = pc
			file++
		}
	}
	require.Equal(t, 0, rank, "layout must describe 8 ranks")
	return pieces
}

// setup builds a validated position from a diagram.
func setup(t testing.TB, rows string, side board.Color, castling board.CastlingRights) board.Position {
	t.Helper()
	p, err := board.Setup{
		Pieces:     layout(t, rows),
		SideToMove: side,
		Castling:   castling,
		EnPassant:  board.NoSquare,
	}.Position()
	require.NoError(t, err)
	return p
}

// play applies a sequence of UCI moves, failing the test on the first illegal one.
func play(t testing.TB, p board.Position, moves ...string) board.Position {
	t.Helper()
	for _, s := range moves {
		m, err := p.ParseMove(s)
		require.NoError(t, err, "move %s", s)
		p = p.ApplyMove(m)
	}
	return p
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
