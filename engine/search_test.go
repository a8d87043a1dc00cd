package engine

import (
	"math/rand"
	"testing"

	"github.com/roe680/bitothello/othellomg"
)

// plainConfig turns off every heuristic that changes the value of the tree,
// so results compare with minimax, and lifts the time budget out of the way.
func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.UseFutility = false
	cfg.UseLMR = false
	cfg.UseKillers = false
	cfg.UseHistory = false
	cfg.BaseBudgetMs = 1 << 30
	cfg.DepthBudgetMs = 0
	return cfg
}

func unlimited(cfg Config) Config {
	cfg.BaseBudgetMs = 1 << 30
	cfg.DepthBudgetMs = 0
	return cfg
}

func midgamePositions(seed int64, n int) ([]othellomg.Board, []othellomg.Color) {
	rng := rand.New(rand.NewSource(seed))
	var boards []othellomg.Board
	var sides []othellomg.Color
	for len(boards) < n {
		b, side := playRandom(rng, 10+rng.Intn(30))
		if b.IsGameOver() || !b.HasLegalMove(side) {
			continue
		}
		boards = append(boards, b)
		sides = append(sides, side)
	}
	return boards, sides
}

func TestNegateSentinels(t *testing.T) {
	if negate(NegInf) != PosInf {
		t.Fatalf("negate(NegInf) = %d", negate(NegInf))
	}
	if negate(PosInf) != NegInf {
		t.Fatalf("negate(PosInf) = %d", negate(PosInf))
	}
	if negate(17) != -17 || negate(-WinScore) != WinScore {
		t.Fatalf("negate of finite scores is wrong")
	}
}

func TestWindowAroundClamps(t *testing.T) {
	lo, hi := windowAround(0, 50)
	if lo != -50 || hi != 50 {
		t.Fatalf("window around 0: [%d, %d]", lo, hi)
	}
	lo, hi = windowAround(PosInf-10, 50)
	if hi != PosInf || lo != PosInf-60 {
		t.Fatalf("upper clamp: [%d, %d]", lo, hi)
	}
	lo, _ = windowAround(NegInf+10, 50)
	if lo != NegInf {
		t.Fatalf("lower clamp: %d", lo)
	}
}

func TestDepthZeroIsStaticEval(t *testing.T) {
	boards, sides := midgamePositions(1, 10)
	for i, b := range boards {
		s := NewSearcher(DefaultConfig(), nil)
		score, _ := s.AlphaBeta(b, sides[i], 0, NegInf, PosInf)
		if score != Evaluate(&b, sides[i]) {
			t.Fatalf("depth 0 score %d != static eval %d", score, Evaluate(&b, sides[i]))
		}
	}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	boards, sides := midgamePositions(2, 12)
	for i, b := range boards {
		for _, depth := range []int{1, 2, 4, 5} {
			res := FindBestMove(b, sides[i], depth, NewTransTable(1<<14))
			if !res.HasMove {
				t.Fatalf("no move returned on %s", b.String())
			}
			if !b.IsLegalMove(res.Move, sides[i]) {
				t.Fatalf("illegal move %s at depth %d on %s", res.Move, depth, b.String())
			}
			if len(res.PV) == 0 || res.PV[0] != res.Move {
				t.Fatalf("PV %v does not start with %s", res.PV, res.Move)
			}
		}
	}
}

func TestSearchNoMoveIsPass(t *testing.T) {
	b := othellomg.Board{Black: sq("a1").Bit(), White: sq("b1").Bit()}
	res := FindBestMove(b, othellomg.White, 4, nil)
	if res.HasMove || res.Move != othellomg.NoSquare {
		t.Fatalf("expected pass, got %+v", res)
	}
}

func TestShallowModeOpening(t *testing.T) {
	res := FindBestMove(othellomg.NewBoard(), othellomg.Black, 1, nil)
	allowed := map[othellomg.Square]bool{
		othellomg.NewSquare(2, 3): true,
		othellomg.NewSquare(3, 2): true,
		othellomg.NewSquare(4, 5): true,
		othellomg.NewSquare(5, 4): true,
	}
	if !res.HasMove || !allowed[res.Move] {
		t.Fatalf("shallow mode picked %s", res.Move)
	}
	// Ties go to the lowest index.
	if res.Move != sq("d3") {
		t.Fatalf("expected d3, got %s", res.Move)
	}
}

func TestShallowModeTakesCorner(t *testing.T) {
	// Black can take a1 by flipping b2 against c3.
	b := othellomg.Board{Black: sq("c3").Bit() | sq("e5").Bit(), White: sq("b2").Bit() | sq("d4").Bit() | sq("d5").Bit()}
	if !b.IsLegalMove(sq("a1"), othellomg.Black) {
		t.Fatalf("a1 should be legal")
	}
	res := FindBestMove(b, othellomg.Black, 1, nil)
	if res.Move != sq("a1") {
		t.Fatalf("expected a1, got %s", res.Move)
	}
}

// When the side to move is stuck, search passes at the same depth and
// returns the negated score of the opponent's search.
func TestForcedPassKeepsDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	found := 0
	for game := 0; game < 400 && found < 5; game++ {
		b := othellomg.NewBoard()
		side := othellomg.Black
		for !b.IsGameOver() {
			moves := othellomg.SquaresOf(b.LegalMoves(side))
			if len(moves) == 0 {
				found++
				for _, depth := range []int{1, 2, 3, 4} {
					stuck := NewSearcher(DefaultConfig(), NewTransTable(1<<14))
					mover := NewSearcher(DefaultConfig(), NewTransTable(1<<14))
					passScore, pv := stuck.AlphaBeta(b, side, depth, NegInf, PosInf)
					moverScore, _ := mover.AlphaBeta(b, side.Opponent(), depth, NegInf, PosInf)
					if passScore != negate(moverScore) {
						t.Fatalf("pass score %d != -%d at depth %d on %s", passScore, moverScore, depth, b.String())
					}
					if pv.GetPVMove() != othellomg.NoSquare {
						t.Fatalf("PV of a stuck side should start with a pass, got %s", pv.String())
					}
				}
				side = side.Opponent()
				continue
			}
			b.MakeMove(moves[rng.Intn(len(moves))], side)
			side = side.Opponent()
		}
	}
	if found == 0 {
		t.Fatalf("no forced pass positions found")
	}
}

func TestAspirationMatchesFullWindow(t *testing.T) {
	configs := map[string]Config{"plain": plainConfig(), "default": unlimited(DefaultConfig())}
	boards, sides := midgamePositions(3, 6)
	for name, cfg := range configs {
		for i, b := range boards {
			for depth := 1; depth <= 6; depth++ {
				withCfg := cfg
				withCfg.AspirationWindow = 10
				withoutCfg := cfg
				withoutCfg.UseAspiration = false

				with := NewSearcher(withCfg, withCfg.NewTable()).Search(b, sides[i], depth)
				without := NewSearcher(withoutCfg, withoutCfg.NewTable()).Search(b, sides[i], depth)
				if with.Score != without.Score || with.Move != without.Move {
					t.Fatalf("%s config, depth %d on %s: aspiration (%s, %d) != full window (%s, %d)",
						name, depth, b.String(), with.Move, with.Score, without.Move, without.Score)
				}
			}
		}
	}
}

// Pruning must not make a node's score depend on the window it is searched
// with: any window holding the full-window score gives that score back.
func TestPrunedScoreIndependentOfWindow(t *testing.T) {
	cfg := unlimited(DefaultConfig())
	boards, sides := midgamePositions(5, 8)
	for i, b := range boards {
		for depth := 2; depth <= 5; depth++ {
			want, _ := NewSearcher(cfg, nil).AlphaBeta(b, sides[i], depth, NegInf, PosInf)
			for _, half := range []int32{1, 7, 60} {
				alpha, beta := windowAround(want, half)
				got, _ := NewSearcher(cfg, nil).AlphaBeta(b, sides[i], depth, alpha, beta)
				if got != want {
					t.Fatalf("depth %d window [%d, %d] on %s: %d, full window %d",
						depth, alpha, beta, b.String(), got, want)
				}
			}
			// A window entirely above the value fails low with a bound at or above it.
			got, _ := NewSearcher(cfg, nil).AlphaBeta(b, sides[i], depth, want+5, want+50)
			if got > want+5 || got < want {
				t.Fatalf("fail low at depth %d gave %d for value %d", depth, got, want)
			}
		}
	}
}

func TestNilTableStillTransposes(t *testing.T) {
	s := NewSearcher(unlimited(DefaultConfig()), nil)
	res := s.Search(othellomg.NewBoard(), othellomg.Black, 6)
	if !res.HasMove || s.Stats.TTHits == 0 {
		t.Fatalf("search with a nil table made no table hits: %+v", s.Stats)
	}
}

func TestSearchMatchesPlainAlphaBeta(t *testing.T) {
	boards, sides := midgamePositions(4, 6)
	for i, b := range boards {
		cfg := plainConfig()
		cfg.UseAspiration = false
		got, _ := NewSearcher(cfg, cfg.NewTable()).AlphaBeta(b, sides[i], 4, NegInf, PosInf)
		want := minimax(b, sides[i], 4)
		if got != want {
			t.Fatalf("alpha-beta %d != minimax %d on %s", got, want, b.String())
		}
	}
}

// minimax is the reference search: no window, no table, no ordering.
func minimax(b othellomg.Board, side othellomg.Color, depth int) int32 {
	if depth == 0 {
		return Evaluate(&b, side)
	}
	legal := b.LegalMoves(side)
	if legal == 0 {
		if !b.HasLegalMove(side.Opponent()) {
			return TerminalScore(&b, side)
		}
		return -minimax(b, side.Opponent(), depth)
	}
	best := NegInf
	for legal != 0 {
		m := othellomg.PopLSB(&legal)
		child := b
		child.MakeMove(m, side)
		best = Max(best, -minimax(child, side.Opponent(), depth-1))
	}
	return best
}

func TestSearchSolvesEndgame(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	solved := 0
	for tries := 0; tries < 60 && solved < 8; tries++ {
		b, side := playRandom(rng, 50+rng.Intn(8))
		empties := b.EmptyCount()
		if b.IsGameOver() || !b.HasLegalMove(side) || empties < 2 || empties > 8 {
			continue
		}
		solved++
		res := NewSearcher(plainConfig(), nil).Search(b, side, empties)
		want := minimax(b, side, empties)
		if res.Score != want {
			t.Fatalf("endgame solve %d != minimax %d on %s", res.Score, want, b.String())
		}
		if want != 0 && !IsWinScore(want) {
			t.Fatalf("full-depth score %d is not a final result", want)
		}
	}
}

func TestSearchStoresRootEntry(t *testing.T) {
	tt := NewTransTable(1 << 14)
	b := othellomg.NewBoard()
	res := FindBestMove(b, othellomg.Black, 4, tt)
	e, ok := tt.Probe(KeyOf(&b, othellomg.Black))
	if !ok {
		t.Fatalf("root position missing from the table")
	}
	if int(e.Depth) != res.Depth {
		t.Fatalf("root entry depth %d, result depth %d", e.Depth, res.Depth)
	}
	if res.Nodes == 0 {
		t.Fatalf("node count not reported")
	}
}

func TestFormatScore(t *testing.T) {
	cases := map[int32]string{
		WinScore + 6:  "win 6",
		-WinScore - 4: "loss 4",
		-35:           "cp -35",
		NegInf:        "none",
	}
	for score, want := range cases {
		if got := FormatScore(score); got != want {
			t.Errorf("FormatScore(%d) = %q, want %q", score, got, want)
		}
	}
}
