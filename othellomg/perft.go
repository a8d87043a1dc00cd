package othellomg

// Perft counts the leaf nodes of the move tree to the given depth. A forced
// pass counts as a ply; a finished game is a leaf regardless of depth.
func Perft(b Board, side Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(side)
	if moves == 0 {
		if b.LegalMoves(side.Opponent()) == 0 {
			return 1
		}
		return Perft(b, side.Opponent(), depth-1)
	}
	if depth == 1 {
		return uint64(popcount(moves))
	}
	var nodes uint64
	for moves != 0 {
		sq := PopLSB(&moves)
		child := b
		child.MakeMove(sq, side)
		nodes += Perft(child, side.Opponent(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move. A forced pass at
// the root is reported under NoSquare.
func PerftDivide(b Board, side Color, depth int) map[Square]uint64 {
	result := make(map[Square]uint64)
	if depth <= 0 {
		return result
	}
	moves := b.LegalMoves(side)
	if moves == 0 {
		if b.LegalMoves(side.Opponent()) != 0 {
			result[NoSquare] = Perft(b, side.Opponent(), depth-1)
		}
		return result
	}
	for moves != 0 {
		sq := PopLSB(&moves)
		child := b
		if child.MakeMove(sq, side) {
			result[sq] = Perft(child, side.Opponent(), depth-1)
		}
	}
	return result
}
