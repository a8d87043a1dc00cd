package othellomg

import (
	"math/bits"
	"strconv"
	"strings"
)

// Color identifies a side. Black always moves first.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Char returns the single character used for the side in position strings.
func (c Color) Char() byte {
	if c == Black {
		return 'X'
	}
	return 'O'
}

// Initial disc placement.
const (
	StartBlack uint64 = 0x0000000810000000
	StartWhite uint64 = 0x0000001008000000
)

// Handy masks
const (
	FullBoard  uint64 = 0xFFFFFFFFFFFFFFFF
	CornerMask uint64 = 0x8100000000000081
	EdgeMask   uint64 = 0xFF818181818181FF

	notFileA uint64 = 0xfefefefefefefefe
	notFileH uint64 = 0x7f7f7f7f7f7f7f7f
)

// Board is the disc occupancy for both sides. It is a plain value: copying a
// Board is how search explores variations.
type Board struct {
	Black uint64
	White uint64
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	return Board{Black: StartBlack, White: StartWhite}
}

// Sides returns the (own, opponent) masks for the given player.
func (b *Board) Sides(c Color) (own uint64, opp uint64) {
	if c == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// Occupied returns every square holding a disc.
func (b *Board) Occupied() uint64 { return b.Black | b.White }

// Empty returns every square without a disc.
func (b *Board) Empty() uint64 { return ^b.Occupied() }

// EmptyCount returns the number of empty squares.
func (b *Board) EmptyCount() int { return 64 - bits.OnesCount64(b.Occupied()) }

// Count returns the number of discs owned by c.
func (b *Board) Count(c Color) int {
	if c == Black {
		return bits.OnesCount64(b.Black)
	}
	return bits.OnesCount64(b.White)
}

// DiscAt reports which side owns sq, if any.
func (b *Board) DiscAt(sq Square) (Color, bool) {
	if !sq.Valid() {
		return Black, false
	}
	bit := sq.Bit()
	switch {
	case b.Black&bit != 0:
		return Black, true
	case b.White&bit != 0:
		return White, true
	}
	return Black, false
}

// IsGameOver reports whether the board is full or neither side can move.
func (b *Board) IsGameOver() bool {
	if b.Black|b.White == FullBoard {
		return true
	}
	return b.LegalMoves(Black) == 0 && b.LegalMoves(White) == 0
}

// Winner returns the side with strictly more discs. The boolean is false on a tie.
func (b *Board) Winner() (Color, bool) {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	}
	return Black, false
}

// Validate checks that no square is claimed by both sides.
func (b *Board) Validate() bool {
	return b.Black&b.White == 0
}

// Pretty renders the board as a grid with row and column indices.
func (b *Board) Pretty() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte('|')
		for col := 0; col < 8; col++ {
			if c, ok := b.DiscAt(NewSquare(row, col)); ok {
				sb.WriteByte(c.Char())
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("X: ")
	sb.WriteString(strconv.Itoa(b.Count(Black)))
	sb.WriteString(" O: ")
	sb.WriteString(strconv.Itoa(b.Count(White)))
	sb.WriteByte('\n')
	return sb.String()
}

// PopLSB removes and returns the least significant set bit of mask as a square.
func PopLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}

// SquaresOf lists the squares set in mask, lowest index first.
func SquaresOf(mask uint64) []Square {
	out := make([]Square, 0, bits.OnesCount64(mask))
	for mask != 0 {
		out = append(out, PopLSB(&mask))
	}
	return out
}

func popcount(x uint64) int { return bits.OnesCount64(x) }
