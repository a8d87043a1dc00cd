package othellomg

// MakeMove places a disc for player on pos and turns over every bracketed
// opponent disc. It returns false and leaves the board untouched when pos is
// off the board, occupied, or flips nothing.
func (b *Board) MakeMove(pos Square, player Color) bool {
	if !pos.Valid() {
		return false
	}
	bit := pos.Bit()
	if (b.Black|b.White)&bit != 0 {
		return false
	}
	flips := b.ComputeFlips(pos, player)
	if flips == 0 {
		return false
	}
	if player == Black {
		b.Black |= bit | flips
		b.White &^= flips
	} else {
		b.White |= bit | flips
		b.Black &^= flips
	}
	return true
}

// Play returns a copy of b with the move applied, and whether it was legal.
func (b Board) Play(pos Square, player Color) (Board, bool) {
	ok := b.MakeMove(pos, player)
	return b, ok
}
