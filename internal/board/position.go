package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position: the mailbox board
// plus side to move, castling rights, en passant target and move
// counters. It is a flat array and a handful of scalars, so copying is
// cheap; a Position is never shared across concurrent mutators, a
// parallel consumer copies instead.
type Position struct {
	board          Board
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square // target square, NoSquare if none
	halfMoveClock  int    // plies since last pawn move or capture
	fullMoveNumber int    // starts at 1
}

// StandardStart creates the canonical initial position.
func StandardStart() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// EmptyPosition creates a position with an empty board, white to move,
// no castling rights and no en passant target.
func EmptyPosition() *Position {
	return &Position{
		board:          NewBoard(),
		sideToMove:     White,
		castling:       NoCastling,
		enPassant:      NoSquare,
		fullMoveNumber: 1,
	}
}

// Copy creates an independent copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// CellAt returns the cell state at the given square.
func (p *Position) CellAt(sq Square) Cell {
	return p.board.At(sq)
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board.At(sq).Piece()
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.board.At(sq).IsEmpty()
}

// RawCell reads a mailbox cell by raw index, off-board included.
// Exposed for future move generation walking piece offsets.
func (p *Position) RawCell(idx int) Cell {
	return p.board.Raw(idx)
}

// Place writes a cell at a square. This is the raw mutation primitive
// a future move applier builds on; no legality is checked.
func (p *Position) Place(sq Square, c Cell) {
	p.board.Set(sq, c)
}

// Remove clears a square and returns the piece that was there.
func (p *Position) Remove(sq Square) Piece {
	piece := p.board.At(sq).Piece()
	p.board.Clear(sq)
	return piece
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// SetSideToMove sets the color to move.
func (p *Position) SetSideToMove(c Color) {
	p.sideToMove = c
}

// CastlingRights returns the castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// SetCastlingRights sets the castling rights.
func (p *Position) SetCastlingRights(cr CastlingRights) {
	p.castling = cr
}

// EnPassant returns the en passant target square, NoSquare if none.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// SetEnPassant sets the en passant target square. Pass NoSquare to
// clear it.
func (p *Position) SetEnPassant(sq Square) {
	p.enPassant = sq
}

// HalfMoveClock returns the half-move clock (for the 50-move rule).
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// SetHalfMoveClock sets the half-move clock.
func (p *Position) SetHalfMoveClock(n int) {
	p.halfMoveClock = n
}

// FullMoveNumber returns the full move counter.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// SetFullMoveNumber sets the full move counter.
func (p *Position) SetFullMoveNumber(n int) {
	p.fullMoveNumber = n
}

// String returns a visual representation of the position with its
// auxiliary state, for logging and debugging.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	lines := Render(p)
	for i, line := range lines {
		fmt.Fprintf(&sb, "%d  %s\n", 8-i, line)
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.fullMoveNumber)
	fmt.Fprintf(&sb, "Hash: %016x\n", p.ComputeHash())
	return sb.String()
}
