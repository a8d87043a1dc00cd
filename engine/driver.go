package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roe680/bitothello/othellomg"
)

// Result is what a top-level search hands back. HasMove false means the side
// to move must pass; it is not an error.
type Result struct {
	Move     othellomg.Square
	HasMove  bool
	Score    int32
	HasScore bool
	Depth    int
	Nodes    uint64
	PV       []othellomg.Square
	Elapsed  time.Duration
}

func (r Result) String() string {
	if !r.HasMove {
		return "bestmove pass"
	}
	return fmt.Sprintf("bestmove %s score %s depth %d nodes %d", r.Move, FormatScore(r.Score), r.Depth, r.Nodes)
}

// FindBestMove runs a fresh searcher with the default configuration.
// table may be a table the caller keeps between turns; nil searches with a
// table of its own that is dropped afterwards.
func FindBestMove(b othellomg.Board, side othellomg.Color, depth int, table *TransTable) Result {
	return NewSearcher(DefaultConfig(), table).Search(b, side, depth)
}

// Search deepens iteratively from one ply up to target and returns the root
// PV move of the deepest finished iteration. Targets of one ply or less use
// the greedy shallow mode instead.
func (s *Searcher) Search(b othellomg.Board, side othellomg.Color, target int) Result {
	legal := b.LegalMoves(side)
	if legal == 0 {
		return Result{Move: othellomg.NoSquare}
	}
	if target <= 1 {
		return shallowMove(b, side, legal)
	}

	s.history.Decay()
	s.killers.Clear()
	s.rootPV.Clear()
	s.Stats = SearchStats{}
	s.timer.StartTime(target, s.cfg)

	result := Result{Move: othellomg.NoSquare}
	var prevScore int32
	for d := 1; d <= target; d++ {
		if d > s.cfg.BudgetMinDepth && s.timer.TimeStatus() {
			log.Debug().Int("plies", d).Dur("elapsed", s.timer.Elapsed()).Msg("budget-exhausted")
			break
		}
		log.Debug().Int("plies", d).Msg("deepening-iteratively")

		var pv PVLine
		var score int32
		if s.cfg.UseAspiration && d > s.cfg.AspirationMinDepth && result.HasScore {
			score = s.aspirationSearch(b, side, d, prevScore, &pv)
		} else {
			score = s.negamax(b, side, d, 0, NegInf, PosInf, &pv)
		}

		rootMove := pv.GetPVMove()
		if rootMove == othellomg.NoSquare || legal&rootMove.Bit() == 0 {
			log.Warn().Int("plies", d).Msg("iteration-without-root-move")
			continue
		}

		prevScore = score
		s.rootPV = pv.Clone()
		result = Result{
			Move:     rootMove,
			HasMove:  true,
			Score:    score,
			HasScore: true,
			Depth:    d,
			PV:       s.rootPV.Clone().Moves,
		}
		log.Debug().Int("plies", d).Str("score", FormatScore(score)).
			Str("pv", pv.String()).Uint64("nodes", s.Stats.Nodes).Msg("best-val")

		// Every line already runs to the end of the game.
		if d >= b.EmptyCount() {
			break
		}
	}

	if !result.HasMove {
		// Unreachable in practice; keep the contract of always moving.
		result.Move = s.OrderedMoves(b, side)[0]
		result.HasMove = true
	}
	result.Nodes = s.Stats.Nodes
	result.Elapsed = s.timer.Elapsed()

	dumpCutStats(s.Stats)
	if n := s.tt.Trim(); n > 0 {
		log.Debug().Int("evicted", n).Int("size", s.tt.Len()).Msg("tt-trimmed")
	}
	return result
}

// aspirationSearch searches a window around center, doubling the half-width
// on every failure and opening it fully once it passes the cap.
func (s *Searcher) aspirationSearch(b othellomg.Board, side othellomg.Color, depth int, center int32, pv *PVLine) int32 {
	half := s.cfg.AspirationWindow
	for half <= s.cfg.AspirationCap {
		alpha, beta := windowAround(center, half)
		score := s.negamax(b, side, depth, 0, alpha, beta, pv)
		if score > alpha && score < beta {
			return score
		}
		s.Stats.AspirationFails++
		log.Debug().Int("plies", depth).Int32("alpha", alpha).Int32("beta", beta).
			Int32("score", score).Msg("aspiration-research")
		half *= 2
	}
	return s.negamax(b, side, depth, 0, NegInf, PosInf, pv)
}

// shallowMove picks the legal move with the best static move value. Ties go
// to the lowest square index.
func shallowMove(b othellomg.Board, side othellomg.Color, legal uint64) Result {
	best, bestVal := othellomg.NoSquare, NegInf
	for m := legal; m != 0; {
		sq := othellomg.PopLSB(&m)
		if v := StaticMoveValue(&b, sq, side); v > bestVal {
			best, bestVal = sq, v
		}
	}
	child := b
	child.MakeMove(best, side)
	return Result{
		Move:     best,
		HasMove:  true,
		Score:    Evaluate(&child, side),
		HasScore: true,
		Depth:    1,
		Nodes:    uint64(popcount(legal)),
		PV:       []othellomg.Square{best},
	}
}
