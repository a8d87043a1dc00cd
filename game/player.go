package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/roe680/bitothello/engine"
	"github.com/roe680/bitothello/othellomg"
)

// Levels are the selectable search depths, weakest first.
var Levels = []int{1, 3, 5, 7, 9, 11, 13}

var levelNames = []string{"Beginner", "Easy", "Normal", "Hard", "Expert", "Master", "Grandmaster"}

// Endgame deepening: extra plies once few squares remain.
const (
	endgameEmpties = 12
	endgameBonus   = 2
	endgameMinimum = 5
)

// LevelName returns the display name of a level, or "" for an unknown one.
func LevelName(level int) string {
	if i := slices.Index(Levels, level); i >= 0 {
		return levelNames[i]
	}
	return ""
}

// ValidLevel reports whether level is one of Levels.
func ValidLevel(level int) bool {
	return slices.Contains(Levels, level)
}

// AIPlayer searches with a fixed level and keeps its searcher, and with it the
// transposition table and history, from one turn to the next.
type AIPlayer struct {
	Level int

	mu       sync.Mutex
	searcher *engine.Searcher
}

// NewAIPlayer returns a player for level using cfg. A nil table gets a fresh one.
func NewAIPlayer(level int, cfg engine.Config, table *engine.TransTable) (*AIPlayer, error) {
	if !ValidLevel(level) {
		return nil, fmt.Errorf("unknown level %d, want one of %v", level, Levels)
	}
	if table == nil {
		table = cfg.NewTable()
	}
	return &AIPlayer{Level: level, searcher: engine.NewSearcher(cfg, table)}, nil
}

func (p *AIPlayer) Name() string {
	return fmt.Sprintf("AI %s (depth %d)", LevelName(p.Level), p.Level)
}

// DepthFor returns the search depth used on b.
func (p *AIPlayer) DepthFor(b othellomg.Board) int {
	if p.Level >= endgameMinimum && b.EmptyCount() <= endgameEmpties {
		return p.Level + endgameBonus
	}
	return p.Level
}

// Think starts a search on its own goroutine and delivers the result on the
// returned channel. Searches by one player run one at a time.
func (p *AIPlayer) Think(b othellomg.Board, side othellomg.Color) <-chan engine.Result {
	ch := make(chan engine.Result, 1)
	go func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		depth := p.DepthFor(b)
		res := p.searcher.Search(b, side, depth)
		log.Info().Str("player", side.String()).Int("depth", depth).
			Str("move", res.Move.String()).Str("score", engine.FormatScore(res.Score)).
			Dur("elapsed", res.Elapsed).Msg("ai-move")
		ch <- res
	}()
	return ch
}

// Move waits for Think, or for ctx. A search already running is not
// interrupted; its result is dropped.
func (p *AIPlayer) Move(ctx context.Context, b othellomg.Board, side othellomg.Color) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	select {
	case res := <-p.Think(b, side):
		return res, nil
	case <-ctx.Done():
		return engine.Result{}, ctx.Err()
	}
}

// Reset forgets everything learned in earlier games.
func (p *AIPlayer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searcher.ResetForNewGame()
}
