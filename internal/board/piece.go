package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*6
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[p])
}

// figurines holds the filled Unicode chess symbol per piece type. The
// filled glyph set is used for both colors; color is carried by the
// cell, not the glyph shape.
var figurines = [6]rune{'♟', '♞', '♝', '♜', '♛', '♚'}

// Figurine returns the display glyph for the piece, or a space for
// NoPiece.
func (p Piece) Figurine() rune {
	if p >= NoPiece {
		return ' '
	}
	return figurines[p.Type()]
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Cell is the state of one mailbox cell: one of the twelve pieces, an
// empty playable square, or the off-board sentinel. Piece cells share
// the Piece encoding, so the closed set has exactly fourteen values of
// which twelve are pieces.
type Cell uint8

const (
	CellEmpty    Cell = Cell(NoPiece)
	CellOffBoard Cell = 13
)

// NewCell wraps a piece into a cell. NoPiece maps to CellEmpty.
func NewCell(p Piece) Cell {
	if p >= NoPiece {
		return CellEmpty
	}
	return Cell(p)
}

// Piece returns the piece stored in the cell, or NoPiece for empty and
// off-board cells.
func (c Cell) Piece() Piece {
	if c >= CellEmpty {
		return NoPiece
	}
	return Piece(c)
}

// IsPiece returns true if the cell holds a piece.
func (c Cell) IsPiece() bool {
	return c < CellEmpty
}

// IsEmpty returns true if the cell is a playable, unoccupied square.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// IsOffBoard returns true if the cell is a sentinel.
func (c Cell) IsOffBoard() bool {
	return c == CellOffBoard
}

// String returns the FEN letter for piece cells, "." for empty cells
// and "#" for sentinels.
func (c Cell) String() string {
	switch {
	case c.IsPiece():
		return c.Piece().String()
	case c.IsEmpty():
		return "."
	default:
		return "#"
	}
}
