// Package board implements the board codec: the bit-packed representation
// of a position and the handful of pure functions (piece lookup, bounds and
// ownership tests, move application, and the colour-swapping rotate) that
// every other package in this engine builds on. It carries no state of its
// own -- every transformation returns a new [Board] value.
package board

import (
	"fmt"

	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/word256"
	"github.com/arborchess/sixchego/xerr"
)

// Board is the packed position: 64 four-bit cells (256 bits total). Cell i
// occupies bits [4i, 4i+4); bit 3 of a cell is the colour (a piece belongs
// to the side to move iff this bit equals the side-to-move flag, see
// [Board.Mover]), bits 2..0 are the piece kind (see [enum.Kind]). Rows and columns 0 and 7 are sentinel rails that must
// stay empty, except for bit 0 of the whole word, which is the side-to-move
// flag.
//
// Board is a value type: every method returns a new Board rather than
// mutating the receiver.
type Board struct {
	word256.Word256
}

// boundsMask has bit i set iff 8x8 cell i is one of the 36 playable
// squares, i.e. rows and columns 1..6.
const boundsMask uint64 = 0x007E7E7E7E7E7E00

// packedIndex is the 216-bit constant packing the 36 six-bit fields that
// map a 6x6 index k to its 8x8 cell A(k). Field k (0 = least significant)
// lives at bit offset 6k.
var packedIndex = word256.FromLimbs(
	0x551349138d30b289,
	0x238a179d71b69959,
	0xcb1badb2baa99a59,
	0x0000000000db5d33,
)

// adjustedIndex is the decoded 36-entry lookup built once from packedIndex.
// Computing it via shifts at init time, instead of hardcoding 36 literals,
// keeps the single packed constant in spec.md as the one source of truth.
var adjustedIndex [enum.Squares]int

func init() {
	for k := 0; k < enum.Squares; k++ {
		adjustedIndex[k] = int(packedIndex.Field(uint(6*k), 6))
	}
}

// AdjustedIndex maps a 6x6 packed index k in [0,36) to its 8x8 cell index.
func AdjustedIndex(k int) int { return adjustedIndex[k] }

// PieceAt returns the 4-bit nibble stored at the given 8x8 cell.
func (b Board) PieceAt(cell int) int { return int(b.Field(uint(4*cell), 4)) }

// Mover returns the side-to-move flag: bit 0 of the board word. A piece
// belongs to the side to move iff its colour bit equals this value.
func (b Board) Mover() int { return int(b.Uint64() & 1) }

// IsInBounds reports whether cell names one of the 36 playable squares.
func IsInBounds(cell int) bool {
	if cell < 0 || cell > 63 {
		return false
	}
	return (boundsMask>>uint(cell))&1 == 1
}

// IsCapture reports whether the piece sitting at cell belongs to the side
// NOT to move, i.e. whether moving there captures an enemy piece.
func (b Board) IsCapture(cell int) bool {
	piece := b.PieceAt(cell)
	if piece == 0 {
		return false
	}
	return (piece >> enum.ColorBit) != b.Mover()
}

// IsValid reports whether cell is a legal destination for a pseudo-legal
// slide or step: in bounds, and either empty or occupied by the opponent.
func (b Board) IsValid(cell int) bool {
	if !IsInBounds(cell) {
		return false
	}
	piece := b.PieceAt(cell)
	return piece == 0 || (piece>>enum.ColorBit) != b.Mover()
}

// Rotate returns the position as seen by the opponent to move next: the
// 62 cells 1..62 (everything but the corner sentinels 0 and 63) swap
// positions end-for-end, and the side-to-move flag in cell 0 toggles.
//
// A full bit-reversal of the whole 256-bit word was considered and
// rejected: it would reverse the bits *within* each nibble too, scrambling
// colour and kind (see SPEC_FULL.md §4.1). Reversing cell order while leaving each
// nibble's own bits untouched preserves piece identity, leaves the corner
// sentinel (cell 63) permanently zero, and makes the flag toggle an
// explicit, provably involutive step rather than an accident of bit layout.
func Rotate(b Board) Board {
	var out word256.Word256
	for i := 1; i <= 62; i++ {
		nib := b.Field(uint(4*i), 4)
		out = out.WithField(uint(4*(63-i)), 4, nib)
	}
	newMover := uint64(1 - b.Mover())
	out = out.WithField(0, 4, newMover)
	return Board{out}
}

// ApplyMove plays m on b: the piece at its source cell is moved to its
// destination cell (the previous occupant of the destination, if any, is
// simply overwritten -- captures need no special casing), and the result is
// rotated to the opponent's perspective. ApplyMove performs no legality
// check: it is total on any syntactically well-formed move.
func ApplyMove(b Board, m Move) Board {
	from, to := m.From(), m.To()
	piece := b.PieceAt(from)
	cleared := b.WithField(uint(4*from), 4, 0)
	placed := cleared.WithField(uint(4*to), 4, uint64(piece))
	return Rotate(Board{placed})
}

// ValidateSentinels reports xerr.ErrInvalidInput if any sentinel rail cell
// holds a nonzero nibble (other than the side-to-move flag at cell 0), or
// if any cell holds a nibble whose kind exceeds [enum.KindKing].
func ValidateSentinels(b Board) error {
	for cell := 0; cell < 64; cell++ {
		rank, file := cell>>3, cell&7
		sentinel := rank == 0 || rank == 7 || file == 0 || file == 7
		nib := b.PieceAt(cell)
		if sentinel {
			if cell == 0 {
				if nib&^1 != 0 {
					return fmt.Errorf("%w: cell 0 carries more than the turn flag: %#x", xerr.ErrInvalidInput, nib)
				}
				continue
			}
			if nib != 0 {
				return fmt.Errorf("%w: sentinel cell %d is not empty: %#x", xerr.ErrInvalidInput, cell, nib)
			}
			continue
		}
		kind := nib & enum.KindMask
		if kind > enum.KindKing {
			return fmt.Errorf("%w: cell %d has out-of-range kind %d", xerr.ErrInvalidInput, cell, kind)
		}
		if kind == enum.KindNone && nib != 0 {
			return fmt.Errorf("%w: cell %d is color-flagged but empty", xerr.ErrInvalidInput, cell)
		}
	}
	return nil
}

// place writes a piece of the given kind and colour at an 8x8 cell.
func place(b Board, cell int, kind enum.Kind, color enum.Color) Board {
	nib := uint64(kind) | uint64(color)<<enum.ColorBit
	return Board{b.WithField(uint(4*cell), 4, nib)}
}

// StartingPosition returns the canonical opening position described in
// spec.md §6: rook, knight, queen, king, knight, rook on the mover's back
// rank (r=1), the mover's pawns on r=2, the opponent's pawns on r=5 and its
// back rank mirrored on r=6, with the side-to-move flag set.
func StartingPosition() Board {
	var b Board
	b.Limbs[0] = 1 // side to move: mover's pieces are colour-coded 1.

	backRank := [enum.BoardSize]enum.Kind{
		enum.KindRook, enum.KindKnight, enum.KindQueen,
		enum.KindKing, enum.KindKnight, enum.KindRook,
	}
	for file := 1; file <= enum.BoardSize; file++ {
		b = place(b, 8+file, backRank[file-1], enum.ColorOurs)
		b = place(b, 16+file, enum.KindPawn, enum.ColorOurs)
		b = place(b, 40+file, enum.KindPawn, enum.ColorTheirs)
		b = place(b, 48+file, backRank[file-1], enum.ColorTheirs)
	}
	return b
}
