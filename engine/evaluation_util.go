package engine

import "github.com/roe680/bitothello/othellomg"

// positionalScore sums the square table over own discs minus opp discs.
func positionalScore(own, opp uint64) int32 {
	taken := (own | opp) & othellomg.CornerMask
	var s int32
	for m := own; m != 0; {
		s += squareValue(othellomg.PopLSB(&m), taken)
	}
	for m := opp; m != 0; {
		s -= squareValue(othellomg.PopLSB(&m), taken)
	}
	return s
}

// squareValue is the table value of sq, with the C- and X-square penalty
// dropped once the neighbouring corner holds a disc.
func squareValue(sq othellomg.Square, takenCorners uint64) int32 {
	v := PositionTable[sq]
	if v < 0 {
		if c := cornerOf[sq]; c != othellomg.NoSquare && takenCorners&c.Bit() != 0 {
			return 0
		}
	}
	return v
}

// stableDiscs returns the own discs that can never be flipped. Propagation
// starts from owned corners: a disc joins the set when, on each of the four
// lines through it, at least one neighbour is off the board or already
// stable. The loop runs until the set stops growing.
//
// Only the immediate neighbour is looked at, not the whole ray. A disc whose
// run of own discs reaches the edge is missed unless the neighbour in that
// run is already stable, and full lines are never credited, so the count is a
// lower bound.
func stableDiscs(own uint64) uint64 {
	stable := own & othellomg.CornerMask
	if stable == 0 {
		return 0
	}
	for {
		next := own
		for axis := 0; axis < othellomg.NumDirections; axis += 2 {
			next &= anchored(own, stable, axis) | anchored(own, stable, axis+1)
		}
		next |= stable
		if next == stable {
			return stable
		}
		stable = next
	}
}

// anchored returns the own discs whose neighbour in direction dir is off the
// board or in stable.
func anchored(own, stable uint64, dir int) uint64 {
	hasNeighbour := othellomg.Shift(othellomg.FullBoard, dir^1)
	return own & (^hasNeighbour | othellomg.Shift(stable, dir^1))
}

// StableCount reports how many of player's discs are stable.
func StableCount(b *othellomg.Board, player othellomg.Color) int {
	own, _ := b.Sides(player)
	return int(popcount(stableDiscs(own)))
}

// StaticMoveValue is the cheap per-move score shared by move ordering and
// shallow mode: table value of the target, a corner bonus and the flip count.
func StaticMoveValue(b *othellomg.Board, sq othellomg.Square, player othellomg.Color) int32 {
	v := PositionTable[sq]
	if othellomg.CornerMask&sq.Bit() != 0 {
		v += CornerMoveBonus
	}
	return v + FlipWeight*popcount(b.ComputeFlips(sq, player))
}
