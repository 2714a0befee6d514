package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/board"
)

func TestSearchCapturesFreeQueen(t *testing.T) {
	tests := []struct {
		name string
		rows string
		side board.Color
		want string
	}{
		{"white knight takes queen", "6k1/5ppp/8/3q4/8/2N5/5PPP/6K1", board.White, "c3d5"},
		{"black knight takes queen", "6k1/5ppp/2n5/8/3Q4/8/5PPP/6K1", board.Black, "c6d4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := position(t, tc.rows, tc.side)
			for depth := 2; depth <= 3; depth++ {
				m, ok := GetAIMove(p, depth)
				require.True(t, ok)
				assert.Equal(t, tc.want, m.String(), "depth %d", depth)
			}
		})
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	p := position(t, "7k/6pp/6Q1/8/8/2B5/8/6K1", board.White)
	r := Search(p, 2)
	require.True(t, r.Found)
	assert.Equal(t, "g6g7", r.Move.String())
	assert.Equal(t, MateScore, r.Score)

	next := p.ApplyMove(r.Move)
	assert.True(t, next.IsCheckmate(board.Black))

	// black mates with the queen after the fool's opening
	p = play(t, board.NewGame(), "f2f3", "e7e5", "g2g4")
	r = Search(p, 2)
	require.True(t, r.Found)
	assert.Equal(t, "d8h4", r.Move.String())
	assert.Equal(t, -MateScore, r.Score)
}

func TestSearchReturnsNoMoveInTerminalPositions(t *testing.T) {
	mated := play(t, board.NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")
	_, ok := GetAIMove(mated, 3)
	assert.False(t, ok)
	r := Search(mated, 3)
	assert.False(t, r.Found)
	assert.Equal(t, -MateScore, r.Score)

	stalemate := position(t, "7k/5Q2/6K1/8/8/8/8/8", board.Black)
	_, ok = GetAIMove(stalemate, 2)
	assert.False(t, ok)
	assert.Equal(t, DrawScore, Search(stalemate, 2).Score)
}

func TestSearchClampsDepth(t *testing.T) {
	p := board.NewGame()
	r := Search(p, 0)
	assert.Equal(t, 1, r.Depth)
	assert.Equal(t, Search(p, 1).Move, r.Move)

	m, ok := GetAIMove(p, -3)
	require.True(t, ok)
	assert.Contains(t, p.AllLegalMoves(), m)
}

func TestSearchScoresFiftyMoveDrawAsZero(t *testing.T) {
	// White is a rook up, but any quiet move hits the fifty-move limit.
	p, err := board.Setup{
		Pieces: map[board.Square]board.Piece{
			board.E1: board.WhiteKing, board.A1: board.WhiteRook, board.E8: board.BlackKing,
		},
		SideToMove:    board.White,
		EnPassant:     board.NoSquare,
		HalfMoveClock: board.FiftyMoveLimit - 1,
	}.Position()
	require.NoError(t, err)
	r := Search(p, 2)
	require.True(t, r.Found)
	assert.Equal(t, DrawScore, r.Score)
}

func TestSearchNeverReturnsIllegalMove(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 6; game++ {
		p := board.NewGame()
		for ply := 0; ply < 30; ply++ {
			legal := p.AllLegalMoves()
			if len(legal) == 0 {
				break
			}
			depth := 1 + ply%3
			m, ok := GetAIMove(p, depth)
			require.True(t, ok)
			require.Contains(t, p.LegalMoves(m.From()), m, "depth %d after %v", depth, moveStrings(p.History()))
			p = p.ApplyMove(legal[r.Intn(len(legal))])
		}
	}
}

func TestSearchDoesNotModifyPosition(t *testing.T) {
	p := play(t, board.NewGame(), "e2e4", "e7e5", "g1f3")
	before := p
	Search(p, 3)
	SearchParallel(p, 2, 4)
	assert.Equal(t, before, p)
}

func TestSearchCountsNodes(t *testing.T) {
	p := board.NewGame()
	// root plus one leaf per legal reply
	assert.Equal(t, uint64(21), Search(p, 1).Nodes)
	assert.Greater(t, Search(p, 3).Nodes, Search(p, 2).Nodes)
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	p := board.NewGame()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Search(p, 3)
	}
}

func BenchmarkSearch_Middlegame_D3(b *testing.B) {
	p := position(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1", board.White)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search(p, 3)
	}
}
