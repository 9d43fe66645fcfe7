package board

import (
	"fmt"

	"github.com/arborchess/sixchego/xerr"
)

// Move packs a source and destination 8x8 cell index into a 12-bit value:
// bits 6-11 hold the source, bits 0-5 the destination. The zero value,
// [NoMove], is reserved to mean "no move" / "end of list".
type Move uint16

// NoMove is the sentinel move value meaning "no move available".
const NoMove Move = 0

// NewMove packs a source/destination cell pair into a Move.
func NewMove(from, to int) Move {
	return Move((from&0x3F)<<6 | (to & 0x3F))
}

// From returns the move's source 8x8 cell index.
func (m Move) From() int { return int(m>>6) & 0x3F }

// To returns the move's destination 8x8 cell index.
func (m Move) To() int { return int(m) & 0x3F }

// MaxMoves bounds a single position's pseudo-legal move count. The bound is
// asserted by the board's 6x6 geometry, not formally proven: MoveList.Push
// reports [xerr.ErrCapacityExceeded] rather than silently truncating if it
// is ever exceeded.
const MaxMoves = 105

// MoveList stores pseudo-legal moves in a preallocated array, avoiding the
// dynamic allocation a growable slice would need on every call to
// generate moves for a position.
type MoveList struct {
	Moves [MaxMoves]Move
	Size  int
}

// Push appends m to the list in generation order.
func (l *MoveList) Push(m Move) error {
	if l.Size >= MaxMoves {
		return fmt.Errorf("%w: more than %d moves", xerr.ErrCapacityExceeded, MaxMoves)
	}
	l.Moves[l.Size] = m
	l.Size++
	return nil
}

// Slice returns the generated moves as a plain slice, sharing the list's
// backing array.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Size] }
