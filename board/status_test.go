package board_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/board"
)

func TestCheckmate_FoolsMate(t *testing.T) {
	p := play(t, board.NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")
	assert.True(t, p.InCheck(board.White), "expected White to be in check")
	assert.Empty(t, p.AllLegalMoves())
	assert.True(t, p.IsCheckmate(board.White))
	assert.False(t, p.IsStalemate(board.White))
	assert.False(t, p.IsCheckmate(board.Black))
	assert.False(t, p.IsDraw())
	assert.Equal(t, board.Checkmate, p.Status())
}

func TestCheckmate_BackRank(t *testing.T) {
	p := setup(t, "k7/8/8/8/8/8/5PPP/4r1K1", board.White, board.CastlingNone)
	assert.True(t, p.IsCheckmate(board.White))
	assert.Equal(t, board.Checkmate, p.Status())

	// a knight that can take the rook rescues the king
	p = setup(t, "k7/8/8/8/8/3N4/5PPP/4r1K1", board.White, board.CastlingNone)
	assert.True(t, p.InCheck(board.White))
	assert.False(t, p.IsCheckmate(board.White))
	assert.Equal(t, []string{"d3e1"}, moveStrings(p.AllLegalMoves()))
	assert.Equal(t, board.Ongoing, p.Status())
}

func TestStalemate_Basic(t *testing.T) {
	p := setup(t, "7k/5Q2/6K1/8/8/8/8/8", board.Black, board.CastlingNone)
	assert.False(t, p.InCheck(board.Black), "expected Black not in check")
	assert.False(t, p.HasLegalMoves(board.Black))
	assert.True(t, p.IsStalemate(board.Black))
	assert.False(t, p.IsCheckmate(board.Black))
	assert.True(t, p.IsDraw())
	assert.Equal(t, board.Stalemate, p.Status())

	// White still has moves in the same diagram
	assert.True(t, p.HasLegalMoves(board.White))

	// one spare pawn move is enough to avoid stalemate
	p = setup(t, "7k/p4Q2/6K1/8/8/8/8/8", board.Black, board.CastlingNone)
	assert.False(t, p.IsStalemate(board.Black))
	assert.False(t, p.IsDraw())
	assert.Equal(t, board.Ongoing, p.Status())
}

func TestFiftyMoveRule(t *testing.T) {
	build := func(clock int) board.Position {
		p, err := board.Setup{
			Pieces:        layout(t, "4k3/8/8/8/8/8/8/4K2R"),
			SideToMove:    board.White,
			EnPassant:     board.NoSquare,
			HalfMoveClock: clock,
		}.Position()
		require.NoError(t, err)
		return p
	}

	p := build(board.FiftyMoveLimit - 1)
	assert.False(t, p.IsDraw())
	assert.Equal(t, board.Ongoing, p.Status())

	// a quiet rook move reaches the limit
	next := play(t, p, "h1h2")
	assert.Equal(t, board.FiftyMoveLimit, next.HalfMoveClock())
	assert.True(t, next.IsDraw())
	assert.Equal(t, board.FiftyMoveDraw, next.Status())

	assert.Equal(t, board.FiftyMoveDraw, build(board.FiftyMoveLimit+20).Status())
}

func TestCheckmateBeatsFiftyMoveRule(t *testing.T) {
	p, err := board.Setup{
		Pieces:        layout(t, "k7/8/8/8/8/8/5PPP/4r1K1"),
		SideToMove:    board.White,
		EnPassant:     board.NoSquare,
		HalfMoveClock: board.FiftyMoveLimit,
	}.Position()
	require.NoError(t, err)
	assert.Equal(t, board.Checkmate, p.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ongoing", board.Ongoing.String())
	assert.Equal(t, "checkmate", board.Checkmate.String())
	assert.Equal(t, "stalemate", board.Stalemate.String())
	assert.Equal(t, "fifty-move rule", board.FiftyMoveDraw.String())
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	p := board.NewGame()

	_, err := p.Play(board.NewMove(board.E2, board.E5))
	require.Error(t, err)
	assert.Equal(t, board.ErrIllegalMove, errors.Cause(err))

	_, err = p.Play(board.NewMove(board.NoSquare, board.E4))
	assert.Equal(t, board.ErrSquareOutOfRange, errors.Cause(err))

	// right squares, wrong move kind
	_, err = p.Play(board.NewEnPassant(board.E2, board.E4))
	assert.Equal(t, board.ErrIllegalMove, errors.Cause(err))

	next, err := p.Play(board.NewMove(board.E2, board.E4))
	require.NoError(t, err)
	assert.Equal(t, board.WhitePawn, next.PieceAt(board.E4))
}
