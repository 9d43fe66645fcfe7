package eval

import (
	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
)

// toK converts an 8x8 cell index into its 6x6 packed index, the inverse of
// [board.AdjustedIndex].
func toK(cell int) int {
	r, f := cell>>3, cell&7
	return 6*(r-1) + (f - 1)
}

// Move scores playing m on b from the mover's perspective:
// (new placement value − old placement value) of the moved piece, plus the
// placement value of whatever piece sat on the destination square.
//
// compat, when true, reproduces a documented defect in the piece this
// engine was modelled on: the moving piece's old and new placement values
// are both read from the queen/king table half selected by the *source*
// square, even when the move crosses the near/far midpoint. Leave it false
// for correct play; set it only to replay recorded games bit-for-bit.
func Move(b board.Board, m board.Move, compat bool) int {
	fromCell, toCell := m.From(), m.To()
	fromK, toK := toK(fromCell), toK(toCell)

	kind := b.PieceAt(fromCell) & enum.KindMask
	captured := b.PieceAt(toCell) & enum.KindMask

	capture := 0
	if captured != enum.KindNone {
		capture = pstValue(captured, toK)
	}

	oldPST := pstValue(kind, fromK)
	var newPST int
	if compat && (kind == enum.KindQueen || kind == enum.KindKing) {
		newPST = wideValueCompat(kind, fromK, toK)
	} else {
		newPST = pstValue(kind, toK)
	}

	return (capture + newPST) - oldPST
}

// wideValueCompat reproduces the source defect: the destination's
// near/far half is chosen by fromK instead of toK, so a move that crosses
// the midpoint reads the wrong half and, in the from_k<18/to_k>=18 case,
// underflows the shift amount and yields 0.
func wideValueCompat(kind enum.Kind, fromK, toK int) int {
	near, far := queenNearPST, queenFarPST
	if kind == enum.KindKing {
		near, far = kingNearPST, kingFarPST
	}
	if fromK < 18 {
		return int(near.Field(uint(12*(17-toK)), 12))
	}
	return int(far.Field(uint(12*(35-toK)), 12))
}
