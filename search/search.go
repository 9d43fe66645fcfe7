// Package search implements the negamax-flavoured move selection driven by
// [eval]: nega_max sums move scores along the best-reply line, and
// search_move picks a root move using the same scan plus the accumulated
// recursive score.
package search

import (
	"fmt"

	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/eval"
	"github.com/arborchess/sixchego/movegen"
	"github.com/arborchess/sixchego/xerr"
)

// kingCaptureScore is returned the instant the best available move would
// capture a king: it dominates any reachable non-king swing (seven queens
// traded is only 1260), so it works as a cheap, lazy king-safety signal
// without a dedicated attacked-square check.
const kingCaptureScore = -4000

// worseThanAnyMove initialises a best-score scan below anything a legal
// move can produce (a king loss plus a queen plus a minor exchange), so the
// first candidate considered always replaces it.
const worseThanAnyMove = -4196

// mateThreshold bounds the cumulative score beyond which a line is read as
// a forced king capture for one side or the other.
const mateThreshold = 1260

// NegaMax returns the cumulative, sign-alternating score of the best line
// out to depth plies from b's mover's point of view. Depth 0 and a
// move-less position (stalemate) both score 0; a position whose best move
// captures a king scores kingCaptureScore regardless of remaining depth.
func NegaMax(b board.Board, depth int) (int, error) {
	if depth == 0 {
		return 0, nil
	}

	list, err := movegen.Generate(b)
	if err != nil {
		return 0, err
	}
	if list.Size == 0 {
		return 0, nil
	}

	bestMove, bestScore := bestOf(b, list, false)

	if b.PieceAt(bestMove.To())&enum.KindMask == enum.KindKing {
		return kingCaptureScore, nil
	}

	next := board.ApplyMove(b, bestMove)
	rest, err := NegaMax(next, depth-1)
	if err != nil {
		return 0, err
	}
	if b.Mover() == 0 {
		return bestScore + rest, nil
	}
	return -bestScore + rest, nil
}

// Move selects a root move for b at the given depth and reports whether the
// mover can force a king capture (stalemate is conflated with checkmate,
// per the design this engine follows). depth must be at least 3: depth 2
// cannot see a mate delivered against the mover's own side.
func Move(b board.Board, depth int) (board.Move, bool, error) {
	if depth < 3 {
		return board.NoMove, false, fmt.Errorf("%w: search depth %d below minimum of 3", xerr.ErrInvalidInput, depth)
	}

	list, err := movegen.Generate(b)
	if err != nil {
		return board.NoMove, false, err
	}
	if list.Size == 0 {
		return board.NoMove, false, nil
	}

	best := board.NoMove
	bestScore := worseThanAnyMove
	for _, m := range list.Slice() {
		score := eval.Move(b, m, false)
		rest, err := NegaMax(board.ApplyMove(b, m), depth-1)
		if err != nil {
			return board.NoMove, false, err
		}
		score += rest
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	if bestScore < -mateThreshold {
		return board.NoMove, false, nil
	}
	return best, bestScore > mateThreshold, nil
}

// bestOf scans list for the move with the highest evaluate_move score,
// first-seen wins ties.
func bestOf(b board.Board, list board.MoveList, compat bool) (board.Move, int) {
	best := board.NoMove
	bestScore := worseThanAnyMove
	for _, m := range list.Slice() {
		score := eval.Move(b, m, compat)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, bestScore
}
