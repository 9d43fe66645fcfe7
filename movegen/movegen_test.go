package movegen_test

import (
	"testing"

	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/movegen"
	"github.com/stretchr/testify/require"
)

// TestGenerateSoundness checks property 5 from the design notes: every
// generated move has both endpoints in the playable region and the source
// holds a piece belonging to the side to move.
func TestGenerateSoundness(t *testing.T) {
	b := board.StartingPosition()
	list, err := movegen.Generate(b)
	require.NoError(t, err)
	require.NotZero(t, list.Size)

	for _, m := range list.Slice() {
		require.True(t, board.IsInBounds(m.From()))
		require.True(t, board.IsInBounds(m.To()))
		piece := b.PieceAt(m.From())
		require.NotZero(t, piece)
		require.Equal(t, b.Mover(), piece>>enum.ColorBit)
	}
}

// TestGeneratePawnOnLastRankStaysSound guards against a forward push
// computing a destination on the sentinel rail beyond row 6: row 7 reads as
// empty under PieceAt just like any playable square, so a pawn sitting on
// the mover's last playable rank must not be allowed to "push" off the
// board. No promotion rule exists (Non-goals), so such a pawn simply has no
// forward push left.
func TestGeneratePawnOnLastRankStaysSound(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	b = place(b, 49, enum.KindPawn, enum.ColorOurs) // r=6,f=1: mover's last playable rank

	list, err := movegen.Generate(b)
	require.NoError(t, err)
	for _, m := range list.Slice() {
		require.True(t, board.IsInBounds(m.From()))
		require.True(t, board.IsInBounds(m.To()))
	}
}

func TestGenerateStartingPositionPawnMoves(t *testing.T) {
	b := board.StartingPosition()
	list, err := movegen.Generate(b)
	require.NoError(t, err)

	// Each of the six pawns on rank 2 has a single- and a double-push
	// available, and no captures: 12 pawn moves total.
	pawnMoves := 0
	for _, m := range list.Slice() {
		if b.PieceAt(m.From())&enum.KindMask == enum.KindPawn {
			pawnMoves++
		}
	}
	require.Equal(t, 12, pawnMoves)
}

func TestGenerateKnightFromCorner(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	// A lone knight on the mover's corner (r=1,f=1 -> cell 9) has exactly
	// two legal jumps on an otherwise empty 6x6 board: +17 and +10.
	b = place(b, 9, enum.KindKnight, enum.ColorOurs)

	list, err := movegen.Generate(b)
	require.NoError(t, err)
	require.Equal(t, 2, list.Size)
}

func TestGenerateBishopSlideStopsAtCapture(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	b = place(b, 9, enum.KindBishop, enum.ColorOurs)
	b = place(b, 27, enum.KindPawn, enum.ColorTheirs) // diagonal +9 from 9, two steps out

	list, err := movegen.Generate(b)
	require.NoError(t, err)

	var destinations []int
	for _, m := range list.Slice() {
		destinations = append(destinations, m.To())
	}
	require.Contains(t, destinations, 18)
	require.Contains(t, destinations, 27)
	require.NotContains(t, destinations, 36)
}

func TestGenerateRespectsRockBottomLeftCorner(t *testing.T) {
	var b board.Board
	b.Limbs[0] = 1
	b = place(b, 9, enum.KindRook, enum.ColorOurs)

	list, err := movegen.Generate(b)
	require.NoError(t, err)
	// A lone rook in the mover's corner slides 5 squares along its file
	// and 5 along its rank: 10 moves.
	require.Equal(t, 10, list.Size)
}

func place(b board.Board, cell int, kind enum.Kind, color enum.Color) board.Board {
	nib := uint64(kind) | uint64(color)<<enum.ColorBit
	return board.Board{Word256: b.WithField(uint(4*cell), 4, nib)}
}
