package engine

import "github.com/roe680/bitothello/othellomg"

/*
	HISTORY
	A move that raised alpha earns depth*depth points for its (phase, side, square).
	Siblings left untried behind a cutoff lose an eighth of theirs. The whole table
	decays by an eighth once per top-level search, and never resets mid-search.
*/

// HistoryTable is indexed by game phase, side to move and target square.
type HistoryTable struct {
	values [3][2][64]int32
}

// Get returns the history weight of sq for side in phase.
func (h *HistoryTable) Get(phase Phase, side othellomg.Color, sq othellomg.Square) int32 {
	return h.values[phase][side][sq]
}

// Bump rewards sq after it improved alpha at the given depth.
func (h *HistoryTable) Bump(phase Phase, side othellomg.Color, sq othellomg.Square, depth int) {
	v := h.values[phase][side][sq] + int32(depth*depth)
	// Stay below the killer offset.
	h.values[phase][side][sq] = Min(v, historyMaxVal)
}

// Penalize decays sq after a sibling cut the node off before sq was tried.
func (h *HistoryTable) Penalize(phase Phase, side othellomg.Color, sq othellomg.Square) {
	if v := h.values[phase][side][sq]; v > 0 {
		h.values[phase][side][sq] = v * 7 / 8
	}
}

// Decay ages every value by a factor of 7/8.
func (h *HistoryTable) Decay() {
	for p := range h.values {
		for s := range h.values[p] {
			for sq := range h.values[p][s] {
				h.values[p][s][sq] = h.values[p][s][sq] * 7 / 8
			}
		}
	}
}

// Clear the values in the history table.
func (h *HistoryTable) Clear() {
	h.values = [3][2][64]int32{}
}
