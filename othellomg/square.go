package othellomg

import "fmt"

// Square is a board index 0-63 with row = sq/8 and col = sq%8.
type Square int

// NoSquare marks "no move"; in a variation it stands for a pass.
const NoSquare Square = -1

// NewSquare builds a square from a zero-based row and column.
func NewSquare(row, col int) Square { return Square(row*8 + col) }

func (sq Square) Row() int { return int(sq) / 8 }
func (sq Square) Col() int { return int(sq) % 8 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// Bit returns the single-bit mask for sq.
func (sq Square) Bit() uint64 { return uint64(1) << uint(sq) }

// String returns column letter then row number, e.g. (2,3) is "d3".
// NoSquare prints as "pass".
func (sq Square) String() string {
	if !sq.Valid() {
		return "pass"
	}
	return string([]byte{byte('a' + sq.Col()), byte('1' + sq.Row())})
}

// ParseSquare accepts "d3" style coordinates, "pass", or "row col" pairs such as "2 3".
func ParseSquare(s string) (Square, error) {
	switch {
	case s == "pass" || s == "--":
		return NoSquare, nil
	case len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8':
		return NewSquare(int(s[1]-'1'), int(s[0]-'a')), nil
	case len(s) == 2 && s[0] >= 'A' && s[0] <= 'H' && s[1] >= '1' && s[1] <= '8':
		return NewSquare(int(s[1]-'1'), int(s[0]-'A')), nil
	}
	var row, col int
	if n, err := fmt.Sscanf(s, "%d %d", &row, &col); err == nil && n == 2 {
		if row < 0 || row > 7 || col < 0 || col > 7 {
			return NoSquare, fmt.Errorf("square %q out of range", s)
		}
		return NewSquare(row, col), nil
	}
	return NoSquare, fmt.Errorf("invalid square %q", s)
}
