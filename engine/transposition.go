package engine

import (
	"math"
	"sync"

	"github.com/roe680/bitothello/othellomg"
)

// NodeType says how a stored score relates to the true value.
type NodeType uint8

const (
	Exact NodeType = iota
	LowerBound
	UpperBound
)

func (t NodeType) String() string {
	switch t {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	default:
		return "upper"
	}
}

const (
	DefaultTTCapacity = 1 << 20

	// Terminal positions are exact at any remaining depth.
	terminalDepth int8 = 127
)

// TTKey identifies a position exactly: both masks plus the side to move.
type TTKey struct {
	Black uint64
	White uint64
	Side  othellomg.Color
}

// KeyOf returns the table key of b with side to move.
func KeyOf(b *othellomg.Board, side othellomg.Color) TTKey {
	return TTKey{Black: b.Black, White: b.White, Side: side}
}

type TTEntry struct {
	Score    int32
	Depth    int8
	Type     NodeType
	BestMove othellomg.Square
}

/*
TransTable maps positions to search results. Several searchers may share one
table; the lock makes each Store replace an entry whole. Once the entry count
passes the high-water mark the shallowest entries go first.
*/
type TransTable struct {
	mu         sync.RWMutex
	entries    map[TTKey]TTEntry
	capacity   int
	highWater  float64
	trimTarget float64
}

// NewTransTable returns an empty table sized for capacity entries.
func NewTransTable(capacity int) *TransTable {
	if capacity <= 0 {
		capacity = DefaultTTCapacity
	}
	return &TransTable{
		entries:    make(map[TTKey]TTEntry),
		capacity:   capacity,
		highWater:  0.9,
		trimTarget: 0.7,
	}
}

// SetTrimThresholds sets the high-water mark and the trim target as fractions
// of capacity. Invalid pairs are ignored.
func (tt *TransTable) SetTrimThresholds(highWater, target float64) {
	if tt == nil || target <= 0 || highWater <= target {
		return
	}
	tt.mu.Lock()
	tt.highWater, tt.trimTarget = highWater, target
	tt.mu.Unlock()
}

// Probe looks up key. A nil table never hits.
func (tt *TransTable) Probe(key TTKey) (TTEntry, bool) {
	if tt == nil {
		return TTEntry{}, false
	}
	tt.mu.RLock()
	e, ok := tt.entries[key]
	tt.mu.RUnlock()
	return e, ok
}

// Store replaces the entry for key, trimming first when the table is full.
func (tt *TransTable) Store(key TTKey, e TTEntry) {
	if tt == nil {
		return
	}
	tt.mu.Lock()
	if len(tt.entries) >= tt.highWaterCount() {
		tt.trimLocked()
	}
	tt.entries[key] = e
	tt.mu.Unlock()
}

func (tt *TransTable) Len() int {
	if tt == nil {
		return 0
	}
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return len(tt.entries)
}

func (tt *TransTable) Capacity() int {
	if tt == nil {
		return 0
	}
	return tt.capacity
}

// Clear drops every entry.
func (tt *TransTable) Clear() {
	if tt == nil {
		return
	}
	tt.mu.Lock()
	tt.entries = make(map[TTKey]TTEntry)
	tt.mu.Unlock()
}

// Trim evicts the lowest-depth entries if the table is past its high-water
// mark and reports how many were removed.
func (tt *TransTable) Trim() int {
	if tt == nil {
		return 0
	}
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if len(tt.entries) <= tt.highWaterCount() {
		return 0
	}
	return tt.trimLocked()
}

func (tt *TransTable) highWaterCount() int {
	return Max(int(math.Round(float64(tt.capacity)*tt.highWater)), 1)
}

// trimLocked removes entries, shallowest depth first, until the table is at
// or below the trim target. The caller holds the write lock.
func (tt *TransTable) trimLocked() int {
	target := int(math.Round(float64(tt.capacity) * tt.trimTarget))
	excess := len(tt.entries) - target
	if excess <= 0 {
		return 0
	}

	var byDepth [128]int
	for _, e := range tt.entries {
		byDepth[depthBucket(e.Depth)]++
	}

	// Every entry below cut goes; at cut itself only partial.
	cut, below := 0, 0
	for cut < len(byDepth) && below+byDepth[cut] <= excess {
		below += byDepth[cut]
		cut++
	}
	partial := excess - below

	removed := 0
	for k, e := range tt.entries {
		d := depthBucket(e.Depth)
		if d < cut {
			delete(tt.entries, k)
			removed++
		} else if d == cut && partial > 0 {
			delete(tt.entries, k)
			removed++
			partial--
		}
	}
	return removed
}

func depthBucket(d int8) int {
	return Clamp(int(d), 0, 127)
}

// resolve applies the entry to a node searched at depth with window
// [alpha, beta]. It reports a cutoff score, or the tightened window. Only an
// entry of the same depth, or a terminal one, is a bound on this node; a
// deeper score is a different number.
func (e TTEntry) resolve(depth int, alpha, beta int32) (score int32, cutoff bool, newAlpha, newBeta int32) {
	if e.Depth != terminalDepth && int(e.Depth) != depth {
		return 0, false, alpha, beta
	}
	switch e.Type {
	case Exact:
		return e.Score, true, alpha, beta
	case LowerBound:
		if e.Score >= beta {
			return e.Score, true, alpha, beta
		}
		alpha = Max(alpha, e.Score)
	case UpperBound:
		if e.Score <= alpha {
			return e.Score, true, alpha, beta
		}
		beta = Min(beta, e.Score)
	}
	if alpha >= beta {
		return e.Score, true, alpha, beta
	}
	return 0, false, alpha, beta
}
