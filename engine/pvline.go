package engine

import (
	"strings"

	"github.com/roe680/bitothello/othellomg"
	"golang.org/x/exp/slices"
)

// PVLine is a principal variation. NoSquare entries are passes.
type PVLine struct {
	Moves []othellomg.Square
}

// Clear empties the line, keeping its backing array.
func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update sets the line to m followed by the child's continuation.
func (pv *PVLine) Update(m othellomg.Square, child PVLine) {
	pv.Moves = append(pv.Moves[:0], m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// GetPVMove returns the first move, or NoSquare for an empty line.
func (pv PVLine) GetPVMove() othellomg.Square {
	if len(pv.Moves) == 0 {
		return othellomg.NoSquare
	}
	return pv.Moves[0]
}

// MoveAt returns the move at ply, or NoSquare past the end of the line.
func (pv PVLine) MoveAt(ply int) othellomg.Square {
	if ply < 0 || ply >= len(pv.Moves) {
		return othellomg.NoSquare
	}
	return pv.Moves[ply]
}

func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: slices.Clone(pv.Moves)}
}

func (pv PVLine) String() string {
	var sb strings.Builder
	for i, m := range pv.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
