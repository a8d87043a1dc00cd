package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/roe680/bitothello/engine"
	"github.com/roe680/bitothello/game"
	"github.com/roe680/bitothello/othellomg"
)

// console is the text command loop. All protocol output goes to out.
type console struct {
	out      io.Writer
	cfg      engine.Config
	table    *engine.TransTable
	searcher *engine.Searcher
	ai       *game.AIPlayer
	game     *game.Game
	depth    int
}

func newConsole(out io.Writer, cfg engine.Config, depth int) (*console, error) {
	table := cfg.NewTable()
	level := depth
	if !game.ValidLevel(level) {
		level = game.Levels[len(game.Levels)/2]
	}
	ai, err := game.NewAIPlayer(level, cfg, table)
	if err != nil {
		return nil, err
	}
	return &console{
		out:      out,
		cfg:      cfg,
		table:    table,
		searcher: engine.NewSearcher(cfg, table),
		ai:       ai,
		game:     game.New(),
		depth:    depth,
	}, nil
}

// run reads commands until EOF or quit.
func (c *console) run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if !c.handle(tokens) {
			return
		}
	}
}

// handle executes one command and reports whether the loop should go on.
func (c *console) handle(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "quit", "exit":
		return false
	case "new":
		c.game = game.New()
		c.ai.Reset()
		c.searcher.ResetForNewGame()
	case "position":
		c.position(tokens[1:])
	case "show", "d":
		fmt.Fprint(c.out, c.game.Board.Pretty())
		fmt.Fprintf(c.out, "%s to move\n", c.game.ToMove)
	case "fen":
		fmt.Fprintln(c.out, othellomg.FormatPosition(c.game.Board, c.game.ToMove))
	case "moves":
		moves := othellomg.SquaresOf(c.game.LegalMoves())
		names := lo.Map(moves, func(sq othellomg.Square, _ int) string { return sq.String() })
		fmt.Fprintln(c.out, "moves", strings.Join(names, " "))
	case "play":
		c.play(tokens[1:])
	case "pass":
		if err := c.game.Pass(0); err != nil {
			fmt.Fprintln(c.out, "info string", err)
		}
	case "eval":
		fmt.Fprintf(c.out, "eval %s (%s phase, stable %d)\n",
			engine.FormatScore(engine.Evaluate(&c.game.Board, c.game.ToMove)),
			engine.GamePhase(&c.game.Board), engine.StableCount(&c.game.Board, c.game.ToMove))
	case "moveordering":
		c.searcher.DumpRootMoveOrdering(c.out, c.game.Board, c.game.ToMove)
	case "go":
		c.search(tokens[1:])
	case "ai":
		c.aiMove()
	case "analyze":
		c.analyze(tokens[1:])
	case "perft":
		c.perft(tokens[1:])
	case "level":
		c.level(tokens[1:])
	case "selfplay":
		c.selfplay()
	case "stats":
		game.Summarize(c.game).WriteTo(c.out)
		for _, side := range []othellomg.Color{othellomg.Black, othellomg.White} {
			fmt.Fprintf(c.out, "thinking %s: %s\n", side, game.PlayerThinking(c.game, side).Round(time.Millisecond))
		}
	case "trim":
		n := c.table.Trim()
		fmt.Fprintf(c.out, "info string trimmed %d entries, %d left\n", n, c.table.Len())
	default:
		fmt.Fprintln(c.out, "info string Unknown command", tokens[0])
	}
	return true
}

func (c *console) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "info string Malformed position command")
		return
	}
	if strings.ToLower(args[0]) == "startpos" {
		c.game = game.New()
		return
	}
	b, side, err := othellomg.ParsePosition(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(c.out, "info string Invalid position:", err)
		return
	}
	c.game = game.FromPosition(b, side)
}

func (c *console) play(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "info string Malformed play command")
		return
	}
	sq, err := othellomg.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return
	}
	if sq == othellomg.NoSquare {
		err = c.game.Pass(0)
	} else {
		err = c.game.Play(sq, 0, nil)
	}
	if err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return
	}
	c.reportIfOver()
}

// depthArg reads an optional "depth N" pair, falling back to the console depth.
func (c *console) depthArg(args []string) (int, error) {
	if len(args) == 0 {
		return c.depth, nil
	}
	if len(args) != 2 || strings.ToLower(args[0]) != "depth" {
		return 0, fmt.Errorf("expected 'depth N', got %q", strings.Join(args, " "))
	}
	d, err := strconv.Atoi(args[1])
	if err != nil || d < 1 {
		return 0, fmt.Errorf("invalid depth %q", args[1])
	}
	return d, nil
}

func (c *console) search(args []string) {
	depth, err := c.depthArg(args)
	if err != nil {
		fmt.Fprintln(c.out, "info string Malformed go command:", err)
		return
	}
	res := c.searcher.Search(c.game.Board, c.game.ToMove, depth)
	c.printInfo(res)
	if !res.HasMove {
		fmt.Fprintln(c.out, "bestmove pass")
		return
	}
	fmt.Fprintln(c.out, "bestmove", res.Move)
}

func (c *console) printInfo(res engine.Result) {
	if !res.HasScore {
		return
	}
	ms := res.Elapsed.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	fmt.Fprintln(c.out,
		"info depth", res.Depth,
		"score", engine.FormatScore(res.Score),
		"nodes", res.Nodes,
		"time", ms,
		"nps", res.Nodes*1000/uint64(ms),
		"pv", engine.PVLine{Moves: res.PV}.String(),
	)
}

// aiMove lets the level player choose and play a move for the side to move.
// It reports whether a turn was taken.
func (c *console) aiMove() bool {
	if c.game.Over() {
		fmt.Fprintln(c.out, "info string", game.ErrGameOver)
		return false
	}
	if c.game.MustPass() {
		if err := c.game.Pass(0); err != nil {
			fmt.Fprintln(c.out, "info string", err)
			return false
		}
		fmt.Fprintln(c.out, "played pass")
		return true
	}
	start := time.Now()
	res, err := c.ai.Move(context.Background(), c.game.Board, c.game.ToMove)
	if err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return false
	}
	score := res.Score
	if err := c.game.Play(res.Move, time.Since(start), &score); err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return false
	}
	c.printInfo(res)
	fmt.Fprintln(c.out, "played", res.Move)
	c.reportIfOver()
	return true
}

func (c *console) analyze(args []string) {
	depth, err := c.depthArg(args)
	if err != nil {
		fmt.Fprintln(c.out, "info string Malformed analyze command:", err)
		return
	}
	scores, err := engine.AnalyzeRoot(context.Background(), c.game.Board, c.game.ToMove, depth, c.cfg, c.table)
	if err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return
	}
	if len(scores) == 0 {
		fmt.Fprintln(c.out, "info string no legal moves")
		return
	}
	for i, rs := range scores {
		fmt.Fprintf(c.out, "info multipv %d move %s score %s pv %s\n",
			i+1, rs.Move, engine.FormatScore(rs.Score), engine.PVLine{Moves: rs.PV}.String())
	}
}

func (c *console) perft(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "info string Malformed perft command")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		fmt.Fprintln(c.out, "info string invalid perft depth", args[0])
		return
	}
	start := time.Now()
	nodes := othellomg.Perft(c.game.Board, c.game.ToMove, depth)
	fmt.Fprintf(c.out, "perft %d nodes %d time %d\n", depth, nodes, time.Since(start).Milliseconds())
}

func (c *console) level(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "level", c.ai.Level, c.ai.Name())
		return
	}
	lvl, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "info string invalid level", args[0])
		return
	}
	ai, err := game.NewAIPlayer(lvl, c.cfg, c.table)
	if err != nil {
		fmt.Fprintln(c.out, "info string", err)
		return
	}
	c.ai = ai
	fmt.Fprintln(c.out, "level", lvl, ai.Name())
}

// selfplay lets the level player finish the game against itself.
func (c *console) selfplay() {
	for !c.game.Over() {
		if !c.aiMove() {
			return
		}
	}
}

func (c *console) reportIfOver() {
	if c.game.Over() {
		game.Summarize(c.game).WriteTo(c.out)
	}
}
