package search_test

import (
	"testing"

	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/search"
	"github.com/arborchess/sixchego/xerr"
	"github.com/stretchr/testify/require"
)

func TestMoveRejectsShallowDepth(t *testing.T) {
	_, _, err := search.Move(board.StartingPosition(), 2)
	require.ErrorIs(t, err, xerr.ErrInvalidInput)
}

func TestMoveStartingPositionDepth3(t *testing.T) {
	m, mated, err := search.Move(board.StartingPosition(), 3)
	require.NoError(t, err)
	require.NotEqual(t, board.NoMove, m)
	require.False(t, mated)
}

func TestMoveIsDeterministic(t *testing.T) {
	b := board.StartingPosition()
	m1, mated1, err := search.Move(b, 3)
	require.NoError(t, err)
	m2, mated2, err := search.Move(b, 3)
	require.NoError(t, err)
	require.Equal(t, m1, m2)
	require.Equal(t, mated1, mated2)
}

func TestNegaMaxZeroDepth(t *testing.T) {
	score, err := search.NegaMax(board.StartingPosition(), 0)
	require.NoError(t, err)
	require.Zero(t, score)
}

// TestMoveRookCapturesKing constructs a position where the mover's rook
// sits one square away from the opponent's undefended king: the only
// sensible depth-3 reply is the king capture, reported via the mated flag.
func TestMoveRookCapturesKing(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	b = place(b, 9, 3, 1)  // our rook, corner
	b = place(b, 10, 6, 0) // their king, one square away

	m, mated, err := search.Move(b, 3)
	require.NoError(t, err)
	require.Equal(t, board.NewMove(9, 10), m)
	require.True(t, mated)
}

func place(b board.Board, cell, kind, color int) board.Board {
	nib := uint64(kind) | uint64(color)<<3
	return board.Board{Word256: b.WithField(uint(4*cell), 4, nib)}
}
