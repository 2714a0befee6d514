package engine

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

// position builds a position without castling rights from a rank-8-first
// placement diagram.
func position(t testing.TB, rows string, side board.Color) board.Position {
	t.Helper()
	pieces := make(map[board.Square]board.Piece)
	rank, file := 7, 0
	for _, ch := range rows {
		switch {
		case ch == '/':
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
	p, err := board.Setup{Pieces: pieces, SideToMove: side, EnPassant: board.NoSquare}.Position()
	require.NoError(t, err)
	return p
}

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
