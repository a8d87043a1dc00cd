package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/roe680/bitothello/engine"
	mg "github.com/roe680/bitothello/othellomg"
)

func main() {
	depthFlag := flag.Int("depth", 10, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	posFlag := flag.String("position", "", "position to search (empty = start position)")
	configFlag := flag.String("config", "", "optional JSON engine config")
	verbose := flag.Bool("v", false, "log search progress")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configFlag); err != nil {
			log.Fatalf("could not load config: %v", err)
		}
	}
	// searchbench measures depth, not the clock
	cfg.BaseBudgetMs = 1 << 30

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	pos := mg.StartPosition
	if *posFlag != "" {
		pos = *posFlag
	}
	board, side, err := mg.ParsePosition(pos)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: position=%q depth=%d repeat=%d\n", pos, depth, repeat)

	var total engine.SearchStats
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		// fresh table per run so repeats are comparable
		s := engine.NewSearcher(cfg, cfg.NewTable())

		iterStart := time.Now()
		res := s.Search(board, side, depth)
		iterElapsed := time.Since(iterStart)
		total.Add(s.Stats)

		fmt.Printf("iteration %d: %s  time=%v\n", i+1, res, iterElapsed)
		fmt.Printf("  tt hits %d cutoffs %d futility %d lmr %d re-searches %d aspiration fails %d\n",
			s.Stats.TTHits, s.Stats.TTCutoffs, s.Stats.FutilityPrunes,
			s.Stats.LateMoveReduced, s.Stats.ReSearches, s.Stats.AspirationFails)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n", totalElapsed, total.Nodes,
		float64(total.Nodes)/totalElapsed.Seconds())
	fmt.Printf("total tt hits %d cutoffs %d beta cutoffs %d passes %d\n",
		total.TTHits, total.TTCutoffs, total.BetaCutoffs, total.Passes)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
