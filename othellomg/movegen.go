package othellomg

// direction describes one of the eight compass steps as a shift on the
// bitboard plus the mask that drops bits which wrapped around a file edge.
type direction struct {
	shift uint
	mask  uint64
	left  bool // true: << (towards higher indices), false: >>
}

// The eight directions, listed as opposite pairs: i and i^1 point away from each other.
var directions = [8]direction{
	{1, notFileA, true},  // east  (col+1)
	{1, notFileH, false}, // west  (col-1)
	{8, FullBoard, true}, // south (row+1)
	{8, FullBoard, false},
	{9, notFileA, true}, // south-east
	{9, notFileH, false},
	{7, notFileH, true}, // south-west
	{7, notFileA, false},
}

// neighbourMask[sq] holds the up-to-eight squares touching sq.
var neighbourMask [64]uint64

func init() {
	initNeighbourMasks()
}

func initNeighbourMasks() {
	for sq := 0; sq < 64; sq++ {
		bit := uint64(1) << uint(sq)
		var mask uint64
		for _, d := range directions {
			mask |= d.step(bit)
		}
		neighbourMask[sq] = mask
	}
}

func (d direction) step(x uint64) uint64 {
	if d.left {
		return (x << d.shift) & d.mask
	}
	return (x >> d.shift) & d.mask
}

// NeighbourMask returns the squares adjacent to sq.
func NeighbourMask(sq Square) uint64 { return neighbourMask[sq] }

// ComputeFlips returns the discs that a disc placed on pos by player would
// turn over. A direction contributes its run of opponent discs only when the
// run is closed by one of player's discs.
func (b *Board) ComputeFlips(pos Square, player Color) uint64 {
	own, opp := b.Sides(player)
	start := pos.Bit()
	var flips uint64
	for _, d := range directions {
		var run uint64
		x := d.step(start)
		for x&opp != 0 {
			run |= x
			x = d.step(x)
		}
		if x&own != 0 {
			flips |= run
		}
	}
	return flips
}

// IsLegalMove reports whether player may place a disc on pos.
func (b *Board) IsLegalMove(pos Square, player Color) bool {
	if !pos.Valid() {
		return false
	}
	if (b.Black|b.White)&pos.Bit() != 0 {
		return false
	}
	_, opp := b.Sides(player)
	if neighbourMask[pos]&opp == 0 {
		return false
	}
	return b.ComputeFlips(pos, player) != 0
}

// LegalMoves returns every square where player has a legal move.
func (b *Board) LegalMoves(player Color) uint64 {
	own, opp := b.Sides(player)
	empty := ^(own | opp)
	var moves uint64
	for _, d := range directions {
		// A run of at most six opponent discs can sit between own and the target.
		t := d.step(own) & opp
		t |= d.step(t) & opp
		t |= d.step(t) & opp
		t |= d.step(t) & opp
		t |= d.step(t) & opp
		t |= d.step(t) & opp
		moves |= d.step(t) & empty
	}
	return moves
}

// HasLegalMove reports whether player can move at all.
func (b *Board) HasLegalMove(player Color) bool {
	return b.LegalMoves(player) != 0
}

// NumDirections is the number of compass directions Shift understands.
const NumDirections = 8

// Shift moves every bit of x one step in direction dir (0-7), dropping bits
// that leave the board. Directions dir and dir^1 are opposite.
func Shift(x uint64, dir int) uint64 { return directions[dir].step(x) }
