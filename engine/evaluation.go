package engine

import "github.com/roe680/bitothello/othellomg"

// Phase buckets the game by the number of empty squares.
type Phase uint8

const (
	PhaseEarly Phase = iota
	PhaseMid
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	default:
		return "end"
	}
}

// GamePhase classifies b by its empty-square count.
func GamePhase(b *othellomg.Board) Phase {
	empties := b.EmptyCount()
	switch {
	case empties > EarlyPhaseEmpties:
		return PhaseEarly
	case empties <= EndPhaseEmpties:
		return PhaseEnd
	default:
		return PhaseMid
	}
}

// TerminalScore scores a finished game from player's point of view:
// WinScore plus the disc margin for a win, its negation for a loss, 0 for a tie.
func TerminalScore(b *othellomg.Board, player othellomg.Color) int32 {
	own, opp := b.Sides(player)
	diff := popcount(own) - popcount(opp)
	switch {
	case diff > 0:
		return WinScore + diff
	case diff < 0:
		return -WinScore + diff
	}
	return 0
}

// Evaluate returns the static score of b for player. Positive favours player.
// Once neither side can move only the final disc count matters.
func Evaluate(b *othellomg.Board, player othellomg.Color) int32 {
	own, opp := b.Sides(player)
	ownMoves := b.LegalMoves(player)
	oppMoves := b.LegalMoves(player.Opponent())
	if ownMoves == 0 && oppMoves == 0 {
		return TerminalScore(b, player)
	}

	phase := GamePhase(b)
	w := &PhaseWeightTable[phase]

	score := w.Position * positionalScore(own, opp)

	ownMob, oppMob := popcount(ownMoves), popcount(oppMoves)
	score += w.Mobility * (ownMob - oppMob)
	if oppMob == 0 {
		score += w.PassBonus
	} else if ownMob == 0 {
		score -= w.PassBonus
	}

	score += w.Corner * (popcount(own&othellomg.CornerMask) - popcount(opp&othellomg.CornerMask))

	if w.Stability != 0 {
		score += w.Stability * (popcount(stableDiscs(own)) - popcount(stableDiscs(opp)))
	}

	score += w.Disc * (popcount(own) - popcount(opp))

	if w.Parity != 0 {
		if b.EmptyCount()%2 == 1 {
			score += w.Parity
		} else {
			score -= w.Parity
		}
	}

	// Heuristic scores stay strictly inside the terminal band.
	return Clamp(score, -WinScore+1, WinScore-1)
}
