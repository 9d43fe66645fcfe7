package eval

import (
	"testing"

	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
	"github.com/stretchr/testify/require"
)

func TestReferenceValuesMatchTableCentroids(t *testing.T) {
	// Each table's entries should average out near the kind's nominal
	// reference value; this is what pins the rook/knight table assignment
	// below (see the comment in tables.go's init).
	cases := []struct {
		kind enum.Kind
		want int
	}{
		{enum.KindPawn, 20},
		{enum.KindBishop, 66},
		{enum.KindKnight, 64},
		{enum.KindRook, 100},
	}
	for _, c := range cases {
		sum := 0
		for k := 0; k < enum.Squares; k++ {
			sum += pstValue(c.kind, k)
		}
		avg := sum / enum.Squares
		require.InDelta(t, c.want, avg, 8, "kind %d table centroid", c.kind)
	}
}

func TestMoveQuietPawnPush(t *testing.T) {
	b := board.StartingPosition()
	m := board.NewMove(17, 25) // a pawn's single forward push
	score := Move(b, m, false)
	require.Equal(t, pstValue(enum.KindPawn, toK(25))-pstValue(enum.KindPawn, toK(17)), score)
}

func TestMoveRoundTripsUnderRotation(t *testing.T) {
	b := board.StartingPosition()
	m := board.NewMove(17, 25)
	a := Move(b, m, false)
	rr := board.Rotate(board.Rotate(b))
	bb := Move(rr, m, false)
	require.Equal(t, a, bb)
}

func TestWideValueCompatUnderflowsToZero(t *testing.T) {
	// from_k < 18, to_k >= 18: the buggy branch reads the near table with a
	// negative-turned-huge shift and must return 0.
	got := wideValueCompat(enum.KindQueen, 0, 20)
	require.Zero(t, got)
}

func TestWideValueCompatMatchesCorrectWithinHalf(t *testing.T) {
	// When a move stays within one half, the buggy and corrected reads
	// agree.
	correct := pstValue(enum.KindQueen, 5)
	buggy := wideValueCompat(enum.KindQueen, 2, 5)
	require.Equal(t, correct, buggy)
}
