package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// A midgame position with 33 empties, White to move.
const midgame = "--XXXX----XXXO--OOXXOO--OOXOXO---OOXXXX---XOOO-----O------------ O"

// goCmd runs the go tool with args, echoing its output, and returns the exit code.
func goCmd(args ...string) int {
	out, err := exec.Command("go", args...).CombinedOutput()
	os.Stdout.Write(out)
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	}
	fmt.Fprintln(os.Stderr, "benchrun:", err)
	return 1
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := goCmd("test", "./othellomg", "./engine", "-run", "^$", "-bench", ".", "-benchmem"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, depth := range []string{"6", "7", "8", "9"} {
		goCmd("run", "./cmd/perft", "-depth", depth, "-label", "Initial")
	}
	goCmd("run", "./cmd/perft", "-position", midgame, "-depth", "6", "-label", "Midgame")

	fmt.Println("\nSearch:")
	goCmd("run", "./cmd/searchbench", "-depth", "8")
	goCmd("run", "./cmd/searchbench", "-position", midgame, "-depth", "8")
}
