// Package legality layers a single geometric-plus-king-safety check on top
// of [movegen] and [search]: a move is legal when it matches the piece's
// movement rules and does not leave the mover's own king capturable on the
// opponent's best immediate reply.
package legality

import (
	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/search"
)

// knightDeltaMask has bit d set iff d is a knight move distance (one of
// 6, 10, 15, 17).
const knightDeltaMask = 0x28440

// kingDeltaMask has bit d set iff d is a king move distance (one of
// 1, 7, 8, 9).
const kingDeltaMask = 0x382

// selfCheckThreshold: a reply scoring below this after the move is read as
// "the mover's king is capturable next ply".
const selfCheckThreshold = -1260

// IsLegal reports whether m is a fully legal move on b: in bounds, moved by
// the side to move, geometrically valid for its kind, and not self-checking.
func IsLegal(b board.Board, m board.Move) bool {
	from, to := m.From(), m.To()
	if !board.IsInBounds(from) || !board.IsInBounds(to) {
		return false
	}

	piece := b.PieceAt(from)
	if piece == 0 || (piece>>enum.ColorBit) != b.Mover() {
		return false
	}

	if !geometryOK(b, piece&enum.KindMask, from, to) {
		return false
	}

	score, err := search.NegaMax(board.ApplyMove(b, m), 1)
	if err != nil || score < selfCheckThreshold {
		return false
	}
	return true
}

// geometryOK checks the per-kind movement rule for a move already known to
// have both endpoints in bounds and a moving piece of the right colour.
func geometryOK(b board.Board, kind enum.Kind, from, to int) bool {
	delta := to - from

	switch kind {
	case enum.KindPawn:
		return pawnGeometryOK(b, from, to, delta)
	case enum.KindKnight:
		d := abs(delta)
		return d < 64 && (knightDeltaMask>>uint(d))&1 == 1 && b.IsValid(to)
	case enum.KindKing:
		d := abs(delta)
		return d < 64 && (kingDeltaMask>>uint(d))&1 == 1 && b.IsValid(to)
	case enum.KindRook:
		return searchRay(b, from, to, []int{1, 8})
	case enum.KindBishop:
		return searchRay(b, from, to, []int{7, 9})
	case enum.KindQueen:
		return searchRay(b, from, to, []int{1, 8, 7, 9})
	default:
		return false
	}
}

// pawnGeometryOK implements the pawn's asymmetric movement rule: forward
// pushes require an empty target (and, for the double push, an empty
// intermediate square and a rank-2 source); diagonal steps require a
// capture.
func pawnGeometryOK(b board.Board, from, to, delta int) bool {
	if to <= from {
		return false
	}
	switch delta {
	case 8:
		return b.PieceAt(to) == 0
	case 16:
		return from>>3 == 2 && b.PieceAt(from+8) == 0 && b.PieceAt(to) == 0
	case 7, 9:
		return b.IsCapture(to)
	default:
		return false
	}
}

// searchRay reports whether to is reachable from from along one of the
// given signed step sizes d (each tried both positive and negative), with
// every intermediate square empty and in bounds and the destination valid.
func searchRay(b board.Board, from, to int, steps []int) bool {
	for _, s := range steps {
		for _, d := range []int{s, -s} {
			if rayReaches(b, from, to, d) {
				return true
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rayReaches(b board.Board, from, to, d int) bool {
	cell := from + d
	for board.IsInBounds(cell) {
		if cell == to {
			return b.IsValid(to)
		}
		if b.PieceAt(cell) != 0 {
			return false
		}
		cell += d
	}
	return false
}
