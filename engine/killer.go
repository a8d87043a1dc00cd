package engine

import (
	"github.com/roe680/bitothello/othellomg"
	"golang.org/x/exp/slices"
)

// MaxPly bounds the recursion depth of one search, passes included.
const MaxPly = 128

// KillerTable keeps up to two moves per ply that recently caused a cutoff.
type KillerTable struct {
	KillerMoves [MaxPly][2]othellomg.Square
}

// NewKillerTable returns an empty table.
func NewKillerTable() *KillerTable {
	k := &KillerTable{}
	k.Clear()
	return k
}

// Insert records sq as the newest killer for ply, shifting the previous one down.
func (k *KillerTable) Insert(sq othellomg.Square, ply int) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if sq != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = sq
	}
}

// IsKiller reports whether sq is one of the stored killers for ply.
func (k *KillerTable) IsKiller(sq othellomg.Square, ply int) bool {
	if ply < 0 || ply >= MaxPly || sq == othellomg.NoSquare {
		return false
	}
	return slices.Contains(k.KillerMoves[ply][:], sq)
}

// Clear the killer moves table.
func (k *KillerTable) Clear() {
	for ply := 0; ply < MaxPly; ply++ {
		k.KillerMoves[ply][0] = othellomg.NoSquare
		k.KillerMoves[ply][1] = othellomg.NoSquare
	}
}
