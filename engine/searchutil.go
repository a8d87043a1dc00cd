package engine

import (
	"fmt"
	"io"
	"math"

	"github.com/roe680/bitothello/othellomg"
)

// Score sentinels of the full window.
const (
	NegInf int32 = math.MinInt32
	PosInf int32 = math.MaxInt32
)

// negate flips a score to the other side's view. The sentinels map onto each
// other so -MinInt32 never overflows.
func negate(s int32) int32 {
	switch s {
	case NegInf:
		return PosInf
	case PosInf:
		return NegInf
	}
	return -s
}

// classify picks the node type for a score searched with window [alpha, beta].
func classify(score, alpha, beta int32) NodeType {
	switch {
	case score <= alpha:
		return UpperBound
	case score >= beta:
		return LowerBound
	}
	return Exact
}

// windowAround returns [center-half, center+half] clamped to the sentinels.
func windowAround(center, half int32) (int32, int32) {
	lo := Clamp(int64(center)-int64(half), int64(NegInf), int64(PosInf))
	hi := Clamp(int64(center)+int64(half), int64(NegInf), int64(PosInf))
	return int32(lo), int32(hi)
}

// IsWinScore reports whether s comes from a finished game.
func IsWinScore(s int32) bool {
	return s >= WinScore || s <= -WinScore
}

// FormatScore renders a score the way the info lines print it.
func FormatScore(score int32) string {
	switch {
	case score == PosInf || score == NegInf:
		return "none"
	case score >= WinScore:
		return fmt.Sprintf("win %d", score-WinScore)
	case score <= -WinScore:
		return fmt.Sprintf("loss %d", -score-WinScore)
	}
	return fmt.Sprintf("cp %d", score)
}

// ResetForNewGame forgets everything learned during the previous game.
func (s *Searcher) ResetForNewGame() {
	s.tt.Clear()
	s.history.Clear()
	s.killers.Clear()
	s.rootPV.Clear()
}

// DumpRootMoveOrdering writes the root candidates in the order search tries them.
func (s *Searcher) DumpRootMoveOrdering(w io.Writer, b othellomg.Board, side othellomg.Color) {
	for idx, sq := range s.OrderedMoves(b, side) {
		fmt.Fprintf(w, "info string #%d %s\n", idx+1, sq)
	}
}
