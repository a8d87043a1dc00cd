package game

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roe680/bitothello/engine"
	"github.com/roe680/bitothello/othellomg"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func mustSquare(t *testing.T, s string) othellomg.Square {
	t.Helper()
	sq, err := othellomg.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

func TestPlayRecordsMoves(t *testing.T) {
	g := New()
	eval := int32(12)
	if err := g.Play(mustSquare(t, "d3"), 5*time.Millisecond, &eval); err != nil {
		t.Fatalf("Play d3: %v", err)
	}
	if g.ToMove != othellomg.White {
		t.Fatalf("turn did not pass to White")
	}
	r := g.Records[0]
	if r.Number != 1 || r.Player != othellomg.Black || r.Square != mustSquare(t, "d3") {
		t.Fatalf("bad record %+v", r)
	}
	if r.BlackCount != 4 || r.WhiteCount != 1 || !r.HasEvaluation || r.Evaluation != 12 {
		t.Fatalf("bad counts or evaluation %+v", r)
	}
}

func TestPlayRejectsIllegal(t *testing.T) {
	g := New()
	before := g.Board
	err := g.Play(mustSquare(t, "a1"), 0, nil)
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if g.Board != before || len(g.Records) != 0 || g.ToMove != othellomg.Black {
		t.Fatalf("rejected move changed the game")
	}
}

func TestPassRules(t *testing.T) {
	g := New()
	if err := g.Pass(0); !errors.Is(err, ErrMustMove) {
		t.Fatalf("pass with legal moves: %v", err)
	}
	stuck := FromPosition(othellomg.Board{
		Black: mustSquare(t, "a1").Bit(),
		White: mustSquare(t, "b1").Bit(),
	}, othellomg.White)
	if !stuck.MustPass() {
		t.Fatalf("White should have to pass")
	}
	if err := stuck.Pass(0); err != nil {
		t.Fatalf("forced pass rejected: %v", err)
	}
	if !stuck.Records[0].IsPass() || stuck.ToMove != othellomg.Black {
		t.Fatalf("pass not recorded")
	}
	if err := stuck.Play(mustSquare(t, "c1"), 0, nil); err != nil {
		t.Fatalf("Play c1: %v", err)
	}
	if !stuck.Over() {
		t.Fatalf("White has no discs left, game should be over")
	}
	if err := stuck.Pass(0); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	res := stuck.Result()
	if !res.HasWinner || res.Winner != othellomg.Black || res.BlackCount != 3 || res.WhiteCount != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLevels(t *testing.T) {
	if LevelName(1) != "Beginner" || LevelName(13) != "Grandmaster" || LevelName(4) != "" {
		t.Fatalf("level names wrong")
	}
	if _, err := NewAIPlayer(4, engine.DefaultConfig(), nil); err == nil {
		t.Fatalf("level 4 accepted")
	}
}

func TestEndgameDeepening(t *testing.T) {
	strong, err := NewAIPlayer(5, engine.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	weak, err := NewAIPlayer(3, engine.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	late := othellomg.Board{Black: 0x00000000FFFFFFFF, White: 0x00FFFFFF00000000}
	if late.EmptyCount() != 8 {
		t.Fatalf("fixture should have 8 empties, has %d", late.EmptyCount())
	}
	if strong.DepthFor(late) != 7 || weak.DepthFor(late) != 3 {
		t.Fatalf("endgame depths: strong %d weak %d", strong.DepthFor(late), weak.DepthFor(late))
	}
	if strong.DepthFor(othellomg.NewBoard()) != 5 {
		t.Fatalf("opening depth should be the level")
	}
}

func TestAIPlayerMoveIsLegal(t *testing.T) {
	p, err := NewAIPlayer(3, engine.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := othellomg.NewBoard()
	res, err := p.Move(context.Background(), b, othellomg.Black)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !res.HasMove || !b.IsLegalMove(res.Move, othellomg.Black) {
		t.Fatalf("illegal AI move %+v", res)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Move(ctx, b, othellomg.Black); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled context: %v", err)
	}
}

// Two shallow AIs play a whole game; the records must add up.
func TestSelfPlayGame(t *testing.T) {
	black, _ := NewAIPlayer(1, engine.DefaultConfig(), nil)
	white, _ := NewAIPlayer(3, engine.DefaultConfig(), nil)
	players := map[othellomg.Color]*AIPlayer{othellomg.Black: black, othellomg.White: white}

	g := New()
	for !g.Over() {
		if g.MustPass() {
			if err := g.Pass(0); err != nil {
				t.Fatal(err)
			}
			continue
		}
		start := time.Now()
		res, err := players[g.ToMove].Move(context.Background(), g.Board, g.ToMove)
		if err != nil {
			t.Fatal(err)
		}
		score := res.Score
		if err := g.Play(res.Move, time.Since(start), &score); err != nil {
			t.Fatalf("AI move rejected: %v", err)
		}
	}

	s := Summarize(g)
	res := g.Result()
	if s.Moves != res.BlackCount+res.WhiteCount-4 {
		t.Fatalf("every move adds one disc: %d moves, %d discs", s.Moves, res.BlackCount+res.WhiteCount)
	}
	if s.Moves+s.Passes != len(g.Records) || len(s.DiscTrend) != len(g.Records) || len(s.Evaluations) != s.Moves {
		t.Fatalf("summary does not match the records: %+v", s)
	}
	last := g.Records[len(g.Records)-1]
	if s.DiscTrend[len(s.DiscTrend)-1] != last.BlackCount-last.WhiteCount {
		t.Fatalf("disc trend out of step")
	}
	if s.MinThinking > s.AvgThinking || s.AvgThinking > s.MaxThinking {
		t.Fatalf("thinking stats out of order: %+v", s)
	}
	if PlayerThinking(g, othellomg.Black)+PlayerThinking(g, othellomg.White) != s.TotalThinking {
		t.Fatalf("per-player thinking does not add up")
	}
}
