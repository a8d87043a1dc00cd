package othellomg

import (
	"errors"
	"fmt"
	"strings"
)

// StartPosition is the initial position with Black to move.
const StartPosition = "---------------------------OX------XO--------------------------- X"

// ParsePosition reads a position string: 64 characters row by row
// ('X' or '*' black, 'O' white, '-' or '.' empty), optionally followed by
// whitespace and the side to move ('X' or 'O'). Black moves when the side is
// omitted.
func ParsePosition(s string) (Board, Color, error) {
	var b Board
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return b, Black, errors.New("empty position")
	}
	squares := fields[0]
	if len(squares) != 64 {
		return b, Black, fmt.Errorf("position needs 64 squares, got %d", len(squares))
	}
	for i := 0; i < 64; i++ {
		bit := uint64(1) << uint(i)
		switch squares[i] {
		case 'X', 'x', '*', 'B', 'b':
			b.Black |= bit
		case 'O', 'o', 'W', 'w':
			b.White |= bit
		case '-', '.', '_':
		default:
			return Board{}, Black, fmt.Errorf("invalid square character %q at %d", squares[i], i)
		}
	}

	side := Black
	if len(fields) > 1 {
		switch strings.ToUpper(fields[1]) {
		case "X", "B", "BLACK":
			side = Black
		case "O", "W", "WHITE":
			side = White
		default:
			return Board{}, Black, fmt.Errorf("invalid side to move %q", fields[1])
		}
	}
	return b, side, nil
}

// FormatPosition is the inverse of ParsePosition.
func FormatPosition(b Board, side Color) string {
	var sb strings.Builder
	sb.Grow(66)
	sb.WriteString(b.String())
	sb.WriteByte(' ')
	sb.WriteByte(side.Char())
	return sb.String()
}

// String returns the 64 character square listing without a side to move.
func (b Board) String() string {
	buf := make([]byte, 64)
	for i := 0; i < 64; i++ {
		bit := uint64(1) << uint(i)
		switch {
		case b.Black&bit != 0:
			buf[i] = 'X'
		case b.White&bit != 0:
			buf[i] = 'O'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}
