package fixtures_test

import (
	"testing"

	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/fixtures"
	"github.com/stretchr/testify/require"
)

func TestLoadBackRankMateInOne(t *testing.T) {
	b := fixtures.Load("back_rank_mate_in_one")
	require.Equal(t, enum.KindRook, b.PieceAt(9)&enum.KindMask)
	require.Equal(t, enum.KindKing, b.PieceAt(10)&enum.KindMask)
	require.Equal(t, 1, b.Mover())
}

func TestLoadUnknownPositionPanics(t *testing.T) {
	require.Panics(t, func() { fixtures.Load("does-not-exist") })
}
