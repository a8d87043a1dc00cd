package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	mg "github.com/roe680/bitothello/othellomg"
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// startCPUProfile profiles into path until the returned stop is called.
func startCPUProfile(path string) (stop func()) {
	f, err := os.Create(path)
	if err != nil {
		fail("cpuprofile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		fail("cpuprofile: %v", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		fail("memprofile: %v", err)
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		fail("memprofile: %v", err)
	}
}

func printDivide(b mg.Board, side mg.Color, depth int) {
	div := mg.PerftDivide(b, side, depth)
	squares := make([]mg.Square, 0, len(div))
	for sq := range div {
		squares = append(squares, sq)
	}
	// pass (-1) sorts first
	sort.Slice(squares, func(i, j int) bool { return squares[i] < squares[j] })
	var sum uint64
	for _, sq := range squares {
		fmt.Printf("%s: %d\n", sq, div[sq])
		sum += div[sq]
	}
	fmt.Printf("Total: %d\n", sum)
}

func main() {
	pos := flag.String("position", mg.StartPosition, "position string: 64 squares and the side to move")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print node counts below each root move")
	repeat := flag.Int("repeat", 1, "run perft N times and report the total")
	label := flag.String("label", "", "label printed in front of the result line")
	cpuProf := flag.String("cpuprofile", "", "write a CPU profile to file")
	memProf := flag.String("memprofile", "", "write a heap profile to file after the run")
	flag.Parse()

	if *depth <= 0 {
		fail("-depth must be > 0")
	}
	board, side, err := mg.ParsePosition(*pos)
	if err != nil {
		fail("bad -position: %v", err)
	}

	if *divide {
		printDivide(board, side, *depth)
		return
	}

	if *cpuProf != "" {
		defer startCPUProfile(*cpuProf)()
	}

	var nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes += mg.Perft(board, side, *depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *memProf != "" {
		writeHeapProfile(*memProf)
	}
}
