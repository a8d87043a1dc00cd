package othellomg

import "testing"

func TestPerftInitial(t *testing.T) {
	want := []uint64{1, 4, 12, 56, 244, 1396, 8200}
	b := NewBoard()
	for depth, nodes := range want {
		if got := Perft(b, Black, depth); got != nodes {
			t.Fatalf("perft(%d) = %d, want %d", depth, got, nodes)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := NewBoard()
	div := PerftDivide(b, Black, 4)
	if len(div) != 4 {
		t.Fatalf("expected 4 root moves, got %d", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != Perft(b, Black, 4) {
		t.Fatalf("divide sum %d != perft %d", sum, Perft(b, Black, 4))
	}
}

func TestPerftCountsPass(t *testing.T) {
	// Black a1, White b1: White is stuck, Black can take c1.
	b := Board{Black: NewSquare(0, 0).Bit(), White: NewSquare(0, 1).Bit()}
	if b.HasLegalMove(White) {
		t.Fatalf("white should have no move")
	}
	if !b.HasLegalMove(Black) {
		t.Fatalf("black should have c1")
	}
	div := PerftDivide(b, White, 2)
	if _, ok := div[NoSquare]; !ok || len(div) != 1 {
		t.Fatalf("expected a single pass entry, got %v", div)
	}
	if div[NoSquare] != Perft(b, Black, 1) {
		t.Fatalf("pass subtree mismatch")
	}
}
