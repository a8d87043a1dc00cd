package engine

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/roe680/bitothello/othellomg"
)

// RootScore is one root candidate with its full-window score.
type RootScore struct {
	Move  othellomg.Square
	Score int32
	PV    []othellomg.Square
	Nodes uint64
}

// AnalyzeRoot scores every legal move of side independently to depth plies
// in total. Candidates run concurrently on at most cfg.Workers goroutines,
// one Searcher each, all sharing table. The result is sorted best first;
// equal scores keep square order. A position without moves yields nil.
func AnalyzeRoot(ctx context.Context, b othellomg.Board, side othellomg.Color, depth int, cfg Config, table *TransTable) ([]RootScore, error) {
	moves := othellomg.SquaresOf(b.LegalMoves(side))
	if len(moves) == 0 {
		return nil, nil
	}
	if table == nil {
		table = cfg.NewTable()
	}

	results := make([]RootScore, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Max(cfg.Workers, 1))
	for i, sq := range moves {
		i, sq := i, sq
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child := b
			child.MakeMove(sq, side)
			s := NewSearcher(cfg, table)
			var pv PVLine
			score := negate(s.negamax(child, side.Opponent(), Max(depth-1, 0), 1, NegInf, PosInf, &pv))
			results[i] = RootScore{
				Move:  sq,
				Score: score,
				PV:    append([]othellomg.Square{sq}, pv.Moves...),
				Nodes: s.Stats.Nodes,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	log.Debug().Int("plies", depth).Int("candidates", len(results)).
		Str("best", results[0].Move.String()).Int32("score", results[0].Score).Msg("root-analysis")
	table.Trim()
	return results, nil
}
