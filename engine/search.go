package engine

import (
	"github.com/roe680/bitothello/othellomg"
)

// Futility margins, indexed by remaining depth.
var FutilityMargins = [4]int32{0, 120, 240, 400}

// Searcher owns the state of one line of search: killers, history, the root
// PV of the last finished iteration and counters. A Searcher is not safe for
// concurrent use; the transposition table it points at is.
type Searcher struct {
	cfg      Config
	tt       *TransTable
	killers  KillerTable
	history  HistoryTable
	rootPV   PVLine
	moveBufs [MaxPly][]move
	timer    TimeHandler

	Stats SearchStats
}

// NewSearcher returns a searcher using cfg and table. A nil table gets a
// fresh one sized by cfg, owned by this searcher alone.
func NewSearcher(cfg Config, table *TransTable) *Searcher {
	if table == nil {
		table = cfg.NewTable()
	}
	s := &Searcher{cfg: cfg, tt: table}
	s.killers.Clear()
	return s
}

// AlphaBeta searches b for side to depth plies inside [alpha, beta] and
// returns the score with its principal variation.
func (s *Searcher) AlphaBeta(b othellomg.Board, side othellomg.Color, depth int, alpha, beta int32) (int32, PVLine) {
	var pv PVLine
	score := s.negamax(b, side, depth, 0, alpha, beta, &pv)
	return score, pv.Clone()
}

func (s *Searcher) negamax(b othellomg.Board, side othellomg.Color, depth int, ply int, alpha, beta int32, pvLine *PVLine) int32 {
	s.Stats.Nodes++
	pvLine.Clear()

	if ply >= MaxPly-1 {
		return Evaluate(&b, side)
	}

	key := KeyOf(&b, side)
	ttMove := othellomg.NoSquare
	if entry, ok := s.tt.Probe(key); ok {
		s.Stats.TTHits++
		ttMove = entry.BestMove
		// The root always searches so it has a move to report.
		if ply > 0 {
			score, cutoff, a, bt := entry.resolve(depth, alpha, beta)
			if cutoff {
				s.Stats.TTCutoffs++
				if ttMove != othellomg.NoSquare && b.IsLegalMove(ttMove, side) {
					pvLine.Moves = append(pvLine.Moves, ttMove)
				}
				return score
			}
			alpha, beta = a, bt
		}
	}
	alphaOrig, betaOrig := alpha, beta

	if depth <= 0 {
		score := Evaluate(&b, side)
		s.tt.Store(key, TTEntry{Score: score, Depth: 0, Type: Exact, BestMove: othellomg.NoSquare})
		return score
	}

	opp := side.Opponent()
	legal := b.LegalMoves(side)
	if legal == 0 {
		if !b.HasLegalMove(opp) {
			score := TerminalScore(&b, side)
			s.tt.Store(key, TTEntry{Score: score, Depth: terminalDepth, Type: Exact, BestMove: othellomg.NoSquare})
			return score
		}
		// Forced pass: same depth, other side.
		s.Stats.Passes++
		var childPV PVLine
		score := negate(s.negamax(b, opp, depth, ply+1, negate(beta), negate(alpha), &childPV))
		pvLine.Update(othellomg.NoSquare, childPV)
		s.tt.Store(key, TTEntry{Score: score, Depth: int8(depth), Type: classify(score, alphaOrig, betaOrig), BestMove: othellomg.NoSquare})
		return score
	}

	phase := GamePhase(&b)
	pvMove := s.rootPV.MoveAt(ply)
	if pvMove != othellomg.NoSquare && legal&pvMove.Bit() != 0 {
		ttMove = othellomg.NoSquare
	} else {
		pvMove = othellomg.NoSquare
	}
	ml := s.scoreMoves(&b, side, legal, ply, pvMove, ttMove, phase)

	// Every move but the statically best one is worth at most the static
	// eval plus the margin here, searched or not.
	futile := s.cfg.UseFutility && depth <= s.cfg.FutilityDepth && depth < len(FutilityMargins) && phase != PhaseEnd && len(ml.moves) > 1
	var ceiling int32
	if futile {
		ceiling = Evaluate(&b, side) + FutilityMargins[depth]
	}

	bestScore := NegInf
	bestMove := othellomg.NoSquare
	var childPV PVLine

	for i := 0; i < len(ml.moves); i++ {
		orderNextMove(i, &ml)
		m := ml.moves[i]
		capped := futile && m.rank > 0

		if capped && ceiling <= alpha && !IsWinScore(alpha) {
			s.Stats.FutilityPrunes++
			bestScore = Max(bestScore, ceiling)
			continue
		}

		child := b
		child.MakeMove(m.sq, side)

		reduce := s.cfg.UseLMR && depth >= s.cfg.LMRMinDepth && m.rank >= s.cfg.LMRMinRank
		scout := i > 0 && alpha != NegInf
		score := s.searchChild(child, opp, depth, ply, alpha, beta, scout, reduce, &childPV)
		if capped {
			score = Min(score, ceiling)
		}

		if score > bestScore {
			bestScore = score
			bestMove = m.sq
			pvLine.Update(m.sq, childPV)
		}
		if score > alpha {
			alpha = score
			if s.cfg.UseHistory {
				s.history.Bump(phase, side, m.sq, depth)
			}
		}
		if alpha >= beta {
			s.Stats.BetaCutoffs++
			if s.cfg.UseKillers && m.sq != pvMove {
				s.killers.Insert(m.sq, ply)
			}
			if s.cfg.UseHistory {
				for j := i + 1; j < len(ml.moves); j++ {
					s.history.Penalize(phase, side, ml.moves[j].sq)
				}
			}
			break
		}
	}

	s.tt.Store(key, TTEntry{Score: bestScore, Depth: int8(depth), Type: classify(bestScore, alphaOrig, betaOrig), BestMove: bestMove})
	return bestScore
}

// searchChild scores one candidate, already played into child, inside
// [alpha, beta]. A scout first tries the null window at alpha. A reduced
// candidate is worth the lower of its reduced and full-depth scores, so both
// are searched whenever it beats alpha.
func (s *Searcher) searchChild(child othellomg.Board, opp othellomg.Color, depth, ply int, alpha, beta int32, scout, reduce bool, pv *PVLine) int32 {
	if !reduce {
		if scout {
			score := negate(s.negamax(child, opp, depth-1, ply+1, negate(alpha+1), negate(alpha), pv))
			if score <= alpha || score >= beta {
				return score
			}
			s.Stats.ReSearches++
		}
		return negate(s.negamax(child, opp, depth-1, ply+1, negate(beta), negate(alpha), pv))
	}

	s.Stats.LateMoveReduced++
	var scratch PVLine
	reduced := NegInf
	if scout {
		reduced = negate(s.negamax(child, opp, Max(depth-2, 0), ply+1, negate(alpha+1), negate(alpha), &scratch))
		if reduced <= alpha {
			return reduced
		}
		s.Stats.ReSearches++
	}
	full := negate(s.negamax(child, opp, depth-1, ply+1, negate(beta), negate(alpha), pv))
	if full <= alpha {
		return full
	}
	if !scout || reduced < beta {
		reduced = negate(s.negamax(child, opp, Max(depth-2, 0), ply+1, negate(beta), negate(alpha), &scratch))
	}
	return Min(reduced, full)
}
