// Package xerr defines the error taxonomy shared by every layer of the
// engine: malformed input is reported as ErrInvalidInput, a move generation
// run that would overflow the fixed-size move list is reported as
// ErrCapacityExceeded. Both are sentinel errors so callers can match them
// with errors.Is after unwrapping the detail added by fmt.Errorf.
package xerr

import "errors"

// ErrInvalidInput means the caller handed the engine a board or move that
// does not satisfy the encoding's invariants (bad sentinels, an out-of-range
// cell, a search depth below the minimum). The engine does not attempt to
// repair the input; it reports the problem instead.
var ErrInvalidInput = errors.New("sixchego: invalid input")

// ErrCapacityExceeded means move generation produced more candidates than
// the fixed-size move list can hold. The 105-move bound is asserted by the
// board's geometry, not proven, so this is treated as a first-class error
// rather than an unreachable case.
var ErrCapacityExceeded = errors.New("sixchego: move list capacity exceeded")
