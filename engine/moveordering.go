package engine

import (
	"github.com/roe680/bitothello/othellomg"
)

type move struct {
	sq     othellomg.Square
	score  int32
	static int32
	// rank among the node's moves by static value alone, ties to the lower
	// square. Pruning decisions read this, never the search order.
	rank int
}
type moveList struct {
	moves []move
}

/*
	Move ordering offsets!
	- The previous iteration's PV move at this ply goes first, then the table's best move.
	- Killers next; history is capped below the killer offset.
	- Everything else falls back on where the disc lands and how many it turns.
	- The root skips killers and history so its order only depends on the last PV.
*/

// scoreMoves builds the candidate list for one node into the per-ply buffer.
func (s *Searcher) scoreMoves(b *othellomg.Board, side othellomg.Color, legal uint64, ply int, pvMove, ttMove othellomg.Square, phase Phase) moveList {
	buf := s.moveBufs[ply][:0]
	for legal != 0 {
		sq := othellomg.PopLSB(&legal)
		static := StaticMoveValue(b, sq, side)
		score := static
		switch {
		case sq == pvMove:
			score += pvOffset
		case sq == ttMove:
			score += ttMoveOffset
		case ply > 0 && s.cfg.UseKillers && s.killers.IsKiller(sq, ply):
			score += killerOffset
		}
		if ply > 0 && s.cfg.UseHistory {
			score += s.history.Get(phase, side, sq)
		}
		buf = append(buf, move{sq: sq, score: score, static: static})
	}
	// buf is in square order, so earlier entries win static ties.
	for i := range buf {
		for j := range buf {
			if buf[j].static > buf[i].static || (buf[j].static == buf[i].static && j < i) {
				buf[i].rank++
			}
		}
	}
	s.moveBufs[ply] = buf
	return moveList{moves: buf}
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// OrderedMoves returns the legal moves of side in root ordering, best first.
func (s *Searcher) OrderedMoves(b othellomg.Board, side othellomg.Color) []othellomg.Square {
	ml := s.scoreMoves(&b, side, b.LegalMoves(side), 0, s.rootPV.GetPVMove(), othellomg.NoSquare, GamePhase(&b))
	out := make([]othellomg.Square, 0, len(ml.moves))
	for i := range ml.moves {
		orderNextMove(i, &ml)
		out = append(out, ml.moves[i].sq)
	}
	return out
}
