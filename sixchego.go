// Package sixchego implements a self-contained engine for a 6x6 chess
// variant with a reduced piece set. It exposes move generation, legality
// checking, and a negamax-flavoured search over a compact, bit-packed board
// representation that doubles as a sentinel-bounded 8x8 array for cheap
// boundary checks.
//
// The board word, move encoding, rotation and pseudo-legal generation are
// implemented in [board] and [movegen]; placement scoring lives in [eval];
// search and the shallow king-safety filter live in [search] and
// [legality]. This package just wires them into the handful of entry
// points a host embedding the engine needs.
package sixchego

import (
	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/eval"
	"github.com/arborchess/sixchego/legality"
	"github.com/arborchess/sixchego/movegen"
	"github.com/arborchess/sixchego/search"
)

// Board is the packed 256-bit position word.
type Board = board.Board

// Move is the packed 12-bit (source, destination) move word.
type Move = board.Move

// MoveList is the fixed-capacity container move generation fills.
type MoveList = board.MoveList

// NoMove is the sentinel "no move" / "end of list" value.
const NoMove = board.NoMove

// NewMove packs a source/destination cell pair into a Move.
func NewMove(from, to int) Move { return board.NewMove(from, to) }

// StartingPosition returns the canonical opening position.
func StartingPosition() Board { return board.StartingPosition() }

// ApplyMove plays m on b and returns the resulting position, already
// rotated to the new mover's perspective. It performs no legality check.
func ApplyMove(b Board, m Move) Board { return board.ApplyMove(b, m) }

// Rotate returns b as seen by the opponent to move next.
func Rotate(b Board) Board { return board.Rotate(b) }

// GenerateMoves returns every pseudo-legal move for the side to move on b.
func GenerateMoves(b Board) (MoveList, error) { return movegen.Generate(b) }

// IsLegalMove reports whether m is fully legal on b: geometrically valid
// and not self-checking.
func IsLegalMove(b Board, m Move) bool { return legality.IsLegal(b, m) }

// EvaluateMove scores playing m on b from the mover's perspective, using the
// corrected (non-bug-compatible) piece-square table reads.
func EvaluateMove(b Board, m Move) int { return eval.Move(b, m, false) }

// EvaluateMoveCompat scores playing m on b the way the engine this package
// is modelled on actually did: queen and king moves that cross the PST
// near/far midpoint read their new placement value from the wrong half
// (see [eval.Move]). Only use this to replay a recorded game bit-for-bit;
// everything else should call [EvaluateMove].
func EvaluateMoveCompat(b Board, m Move) int { return eval.Move(b, m, true) }

// ValidateBoard reports an error wrapping [xerr.ErrInvalidInput] if b
// violates the sentinel or kind-range invariants a well-formed board word
// must satisfy. Callers that construct boards from an untrusted source
// (network, file, user-typed FEN-like notation) should validate before
// passing them to any other function in this package.
func ValidateBoard(b Board) error { return board.ValidateSentinels(b) }

// NegaMax returns the cumulative negamax score of the best line out to
// depth plies on b.
func NegaMax(b Board, depth int) (int, error) { return search.NegaMax(b, depth) }

// SearchMove selects a root move for b at the given depth (minimum 3) and
// reports whether the mover can force a king capture.
func SearchMove(b Board, depth int) (Move, bool, error) { return search.Move(b, depth) }
