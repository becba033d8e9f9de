// Package board implements a 10x12 mailbox chess board representation.
package board

import "fmt"

// File is a board column, a through h. Only the eight FileA..FileH
// constants are meaningful values.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Char returns the file letter ('a'..'h').
func (f File) Char() byte {
	return 'a' + byte(f)
}

// Rank is a board row, 1 through 8. Only the eight Rank1..Rank8
// constants are meaningful values.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Char returns the rank digit ('1'..'8').
func (r Rank) Char() byte {
	return '1' + byte(r)
}

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", sq.File().Char(), sq.Rank().Char())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(File(file), Rank(rank)), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mailbox layout: 10 columns by 12 rows. The playable squares occupy
// indices 21..98 off the border columns; the two-row top and bottom
// margins and the one-column side margins exist so that piece-offset
// arithmetic (knight jumps included) walks onto a sentinel cell instead
// of wrapping onto an unrelated rank.
const (
	MailboxSize = 120
	mailboxA1   = 21
	mailboxH8   = 98
)

// Mailbox returns the 10x12 mailbox index of the square, in [21,98].
// This formula is the single source of truth for mailbox addressing;
// nothing outside this file computes raw offsets.
func (sq Square) Mailbox() int {
	return (int(sq.Rank())+2)*10 + int(sq.File()) + 1
}

// SquareAt maps a mailbox index back to its square. The second return
// value is false for indices outside [0,119] and for sentinel cells,
// which future move generation probes as part of normal operation.
func SquareAt(idx int) (Square, bool) {
	if idx < mailboxA1 || idx > mailboxH8 {
		return NoSquare, false
	}
	file := idx%10 - 1
	if file < 0 || file > 7 {
		return NoSquare, false
	}
	rank := idx/10 - 2
	return NewSquare(File(file), Rank(rank)), true
}
