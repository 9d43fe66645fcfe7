// Package movegen produces the pseudo-legal moves available to the side to
// move on a packed board: geometrically legal, bounds-respecting, and never
// capturing a piece of the mover's own colour. It does not filter moves that
// leave the mover's king attacked; that is [legality]'s job.
package movegen

import (
	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
)

// knightOffsets packs the four knight deltas {6, 10, 15, 17} as bytes,
// least-significant first.
const knightOffsets uint32 = 0x060A0F11

// kingOffsets packs the four king deltas {1, 7, 8, 9} as bytes,
// least-significant first.
const kingOffsets uint32 = 0x01070809

// orthogonal holds the rook/queen sliding directions.
var orthogonal = [4]int{1, -1, 8, -8}

// diagonal holds the bishop/queen sliding directions.
var diagonal = [4]int{7, -7, 9, -9}

// Generate appends every pseudo-legal move for the side to move on b to the
// returned [board.MoveList], in 6x6-index iteration order. It reports
// [github.com/arborchess/sixchego/xerr.ErrCapacityExceeded] if the position
// (genuinely out-of-spec) would need more than [board.MaxMoves] entries.
func Generate(b board.Board) (board.MoveList, error) {
	var list board.MoveList

	for k := 0; k < enum.Squares; k++ {
		cell := board.AdjustedIndex(k)
		piece := b.PieceAt(cell)
		if piece == 0 {
			continue
		}
		if (piece >> enum.ColorBit) != b.Mover() {
			continue
		}

		var err error
		switch piece & enum.KindMask {
		case enum.KindPawn:
			err = genPawn(b, cell, &list)
		case enum.KindKnight:
			err = genOffsets(b, cell, knightOffsets, &list)
		case enum.KindKing:
			err = genOffsets(b, cell, kingOffsets, &list)
		case enum.KindRook:
			err = genSlides(b, cell, orthogonal[:], &list)
		case enum.KindBishop:
			err = genSlides(b, cell, diagonal[:], &list)
		case enum.KindQueen:
			if err = genSlides(b, cell, orthogonal[:], &list); err == nil {
				err = genSlides(b, cell, diagonal[:], &list)
			}
		}
		if err != nil {
			return list, err
		}
	}

	return list, nil
}

// genPawn appends the pawn's single/double forward push and its two
// diagonal captures.
func genPawn(b board.Board, cell int, list *board.MoveList) error {
	if fwd := cell + 8; board.IsInBounds(fwd) && b.PieceAt(fwd) == 0 {
		if err := list.Push(board.NewMove(cell, fwd)); err != nil {
			return err
		}
		if cell>>3 == 2 {
			if dbl := cell + 16; board.IsInBounds(dbl) && b.PieceAt(dbl) == 0 {
				if err := list.Push(board.NewMove(cell, dbl)); err != nil {
					return err
				}
			}
		}
	}
	if b.IsCapture(cell + 7) {
		if err := list.Push(board.NewMove(cell, cell+7)); err != nil {
			return err
		}
	}
	if b.IsCapture(cell + 9) {
		if err := list.Push(board.NewMove(cell, cell+9)); err != nil {
			return err
		}
	}
	return nil
}

// genOffsets appends moves for a stepping piece (knight or king) whose
// relative deltas are packed least-significant-byte-first into offsets.
func genOffsets(b board.Board, cell int, offsets uint32, list *board.MoveList) error {
	for i := 0; i < 4; i++ {
		delta := int(byte(offsets >> (8 * i)))

		to := cell + delta
		if b.IsValid(to) {
			if err := list.Push(board.NewMove(cell, to)); err != nil {
				return err
			}
		}

		if delta <= cell {
			to = cell - delta
			if b.IsValid(to) {
				if err := list.Push(board.NewMove(cell, to)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// genSlides appends every move along each direction in dirs, starting one
// step from cell and continuing until the ray leaves the board, hits an own
// piece, or captures an enemy piece (the capturing move is appended, then
// the ray stops).
func genSlides(b board.Board, cell int, dirs []int, list *board.MoveList) error {
	for _, d := range dirs {
		to := cell + d
		for {
			// A -9 ray must never step onto cell 0: the side-to-move flag
			// living there would otherwise look like a capturable piece.
			if d == -9 && to == 0 {
				break
			}
			if !b.IsValid(to) {
				break
			}
			if err := list.Push(board.NewMove(cell, to)); err != nil {
				return err
			}
			if b.IsCapture(to) {
				break
			}
			to += d
		}
	}
	return nil
}
