package game

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"

	"github.com/roe680/bitothello/othellomg"
)

// Summary aggregates the records of one game.
type Summary struct {
	Result Result

	Moves  int
	Passes int

	TotalThinking time.Duration
	AvgThinking   time.Duration
	MinThinking   time.Duration
	MaxThinking   time.Duration

	// Disc difference (black minus white) after every turn.
	DiscTrend []int
	// Engine evaluations in turn order, from the mover's point of view.
	Evaluations []int32
}

// Summarize builds the statistics of g.
func Summarize(g *Game) Summary {
	moves := lo.Filter(g.Records, func(r MoveRecord, _ int) bool { return !r.IsPass() })
	thinking := lo.Map(moves, func(r MoveRecord, _ int) time.Duration { return r.ThinkingTime })

	s := Summary{
		Result: g.Result(),
		Moves:  len(moves),
		Passes: len(g.Records) - len(moves),
		DiscTrend: lo.Map(g.Records, func(r MoveRecord, _ int) int {
			return r.BlackCount - r.WhiteCount
		}),
		Evaluations: lo.FilterMap(g.Records, func(r MoveRecord, _ int) (int32, bool) {
			return r.Evaluation, r.HasEvaluation
		}),
	}
	if len(thinking) > 0 {
		s.TotalThinking = lo.Sum(thinking)
		s.AvgThinking = s.TotalThinking / time.Duration(len(thinking))
		s.MinThinking = lo.Min(thinking)
		s.MaxThinking = lo.Max(thinking)
	}
	return s
}

// PlayerThinking returns the total thinking time of one side.
func PlayerThinking(g *Game, c othellomg.Color) time.Duration {
	return lo.SumBy(g.Records, func(r MoveRecord) time.Duration {
		if r.Player != c {
			return 0
		}
		return r.ThinkingTime
	})
}

// WriteTo prints the summary in the console's plain text format.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"result: %s\nmoves: %d passes: %d\nthinking: total %s avg %s min %s max %s\n",
		s.Result, s.Moves, s.Passes,
		s.TotalThinking.Round(time.Millisecond), s.AvgThinking.Round(time.Millisecond),
		s.MinThinking.Round(time.Millisecond), s.MaxThinking.Round(time.Millisecond))
	return int64(n), err
}
