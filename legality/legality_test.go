package legality_test

import (
	"testing"

	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/legality"
	"github.com/stretchr/testify/require"
)

func TestIsLegalStartingPositionPawnPush(t *testing.T) {
	b := board.StartingPosition()
	require.True(t, legality.IsLegal(b, board.NewMove(17, 25)))
}

func TestIsLegalRejectsEmptySource(t *testing.T) {
	b := board.StartingPosition()
	require.False(t, legality.IsLegal(b, board.NewMove(33, 41))) // empty square on r4
}

func TestIsLegalRejectsWrongColor(t *testing.T) {
	b := board.StartingPosition()
	// cell 41: opponent pawn on r5, not the mover's to move.
	require.False(t, legality.IsLegal(b, board.NewMove(41, 33)))
}

func TestIsLegalRejectsBadPawnGeometry(t *testing.T) {
	b := board.StartingPosition()
	// Sideways pawn shuffle, not a legal pawn move.
	require.False(t, legality.IsLegal(b, board.NewMove(17, 18)))
}

// TestIsLegalRejectsSelfCheck builds a position where the mover's only
// piece besides the king is pinned-in-spirit: moving it away lets the
// opponent's rook capture the king next ply on an open file.
func TestIsLegalRejectsSelfCheck(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	b = place(b, 9, enum.KindKing, enum.ColorOurs)
	b = place(b, 17, enum.KindBishop, enum.ColorOurs) // blocks the file
	b = place(b, 49, enum.KindRook, enum.ColorTheirs) // same file as king

	// Moving the bishop off the file exposes the king to the rook.
	require.False(t, legality.IsLegal(b, board.NewMove(17, 26)))
}

func place(b board.Board, cell int, kind enum.Kind, color enum.Color) board.Board {
	nib := uint64(kind) | uint64(color)<<enum.ColorBit
	return board.Board{Word256: b.WithField(uint(4*cell), 4, nib)}
}
