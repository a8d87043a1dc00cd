// Package game tracks one Othello game: whose turn it is, every move or pass
// played and the final result.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/roe680/bitothello/othellomg"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrMustMove    = errors.New("pass not allowed while a legal move exists")
	ErrGameOver    = errors.New("game is over")
)

// MoveRecord describes one turn. Square is NoSquare for a pass.
type MoveRecord struct {
	Number        int
	Player        othellomg.Color
	Square        othellomg.Square
	ThinkingTime  time.Duration
	BlackCount    int
	WhiteCount    int
	Evaluation    int32
	HasEvaluation bool
}

func (r MoveRecord) IsPass() bool { return r.Square == othellomg.NoSquare }

// Game is a board plus the turn history that produced it.
type Game struct {
	Board   othellomg.Board
	ToMove  othellomg.Color
	Records []MoveRecord
	started time.Time
}

// New starts a game from the standard position with Black to move.
func New() *Game {
	return FromPosition(othellomg.NewBoard(), othellomg.Black)
}

// FromPosition starts a game from an arbitrary position.
func FromPosition(b othellomg.Board, toMove othellomg.Color) *Game {
	return &Game{Board: b, ToMove: toMove, started: time.Now()}
}

// LegalMoves returns the moves available to the side to move.
func (g *Game) LegalMoves() uint64 {
	return g.Board.LegalMoves(g.ToMove)
}

// MustPass reports whether the side to move has no move while the game goes on.
func (g *Game) MustPass() bool {
	return !g.Over() && g.LegalMoves() == 0
}

func (g *Game) Over() bool {
	return g.Board.IsGameOver()
}

// Play applies sq for the side to move. eval is the mover's evaluation when an
// engine chose the move, or nil.
func (g *Game) Play(sq othellomg.Square, thinking time.Duration, eval *int32) error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.Board.MakeMove(sq, g.ToMove) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, sq, g.ToMove)
	}
	g.record(sq, thinking, eval)
	return nil
}

// Pass hands the turn over. It is only allowed when the side to move is stuck.
func (g *Game) Pass(thinking time.Duration) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.LegalMoves() != 0 {
		return ErrMustMove
	}
	g.record(othellomg.NoSquare, thinking, nil)
	return nil
}

func (g *Game) record(sq othellomg.Square, thinking time.Duration, eval *int32) {
	r := MoveRecord{
		Number:       len(g.Records) + 1,
		Player:       g.ToMove,
		Square:       sq,
		ThinkingTime: thinking,
		BlackCount:   g.Board.Count(othellomg.Black),
		WhiteCount:   g.Board.Count(othellomg.White),
	}
	if eval != nil {
		r.Evaluation, r.HasEvaluation = *eval, true
	}
	g.Records = append(g.Records, r)
	g.ToMove = g.ToMove.Opponent()
}

// Result is the outcome of a finished game.
type Result struct {
	Winner     othellomg.Color
	HasWinner  bool
	BlackCount int
	WhiteCount int
	Moves      int
	Duration   time.Duration
}

func (r Result) String() string {
	if !r.HasWinner {
		return fmt.Sprintf("draw %d-%d", r.BlackCount, r.WhiteCount)
	}
	return fmt.Sprintf("%s wins %d-%d", r.Winner, r.BlackCount, r.WhiteCount)
}

// Result reports the current standing; it is final once Over is true.
func (g *Game) Result() Result {
	w, ok := g.Board.Winner()
	return Result{
		Winner:     w,
		HasWinner:  ok,
		BlackCount: g.Board.Count(othellomg.Black),
		WhiteCount: g.Board.Count(othellomg.White),
		Moves:      len(g.Records),
		Duration:   time.Since(g.started),
	}
}
