package engine

// Phase thresholds, counted in empty squares.
var (
	EarlyPhaseEmpties = 44
	EndPhaseEmpties   = 14
)

// WinScore offsets terminal scores so every finished game outranks any
// heuristic evaluation.
const WinScore int32 = 10000

// PositionTable scores a disc on each square, a1 first.
var PositionTable = [64]int32{
	500, -150, 30, 10, 10, 30, -150, 500,
	-150, -250, -15, -5, -5, -15, -250, -150,
	30, -15, 15, 3, 3, 15, -15, 30,
	10, -5, 3, 3, 3, 3, -5, 10,
	10, -5, 3, 3, 3, 3, -5, 10,
	30, -15, 15, 3, 3, 15, -15, 30,
	-150, -250, -15, -5, -5, -15, -250, -150,
	500, -150, 30, 10, 10, 30, -150, 500,
}

// PhaseWeights scales each evaluation term for one game phase.
type PhaseWeights struct {
	Position  int32
	Mobility  int32
	PassBonus int32
	Corner    int32
	Stability int32
	Disc      int32
	Parity    int32
}

var PhaseWeightTable = [3]PhaseWeights{
	PhaseEarly: {Position: 1, Mobility: 12, PassBonus: 100, Corner: 200, Stability: 20, Disc: 0, Parity: 0},
	PhaseMid:   {Position: 1, Mobility: 10, PassBonus: 150, Corner: 200, Stability: 30, Disc: 1, Parity: 0},
	PhaseEnd:   {Position: 1, Mobility: 5, PassBonus: 200, Corner: 150, Stability: 40, Disc: 20, Parity: 50},
}

// Move ordering weights.
var (
	pvOffset        int32 = 1_000_000
	ttMoveOffset    int32 = 500_000
	killerOffset    int32 = 100_000
	CornerMoveBonus int32 = 1000
	FlipWeight      int32 = 5
	historyMaxVal   int32 = 50_000
)
