// Package enum contains custom type declarations and predefined constants.
// Used to avoid the "magic numbers" antipattern.
package enum

// Kind identifies a piece kind packed into the low 3 bits of a board nibble.
// Zero means the square is empty.
type Kind = int

const (
	KindNone Kind = iota
	KindPawn
	KindBishop
	KindRook
	KindKnight
	KindQueen
	KindKing
)

// Color is an allias type to avoid bothersome conversion between int and Color.
//
// Color does not name "white" or "black" in an absolute sense: it names
// whether a piece belongs to the side encoded as bit 0 of the board word
// (the mover, color bit 1) or to the opponent (color bit 0). Rotate swaps
// the meaning of both after every move.
type Color = int

const (
	ColorTheirs Color = iota
	ColorOurs
)

// BoardSize is the number of files (and ranks) in the playable region.
const BoardSize = 6

// Squares is the number of playable squares (BoardSize x BoardSize).
const Squares = BoardSize * BoardSize

// CellBits is the width in bits of a single board nibble.
const CellBits = 4

// ColorBit is the bit within a nibble that stores the piece's color.
const ColorBit = 3

// KindMask isolates the 3 kind bits of a nibble.
const KindMask = 0x7
