package board

// Board is the 10x12 mailbox: 120 cells each holding a piece, an empty
// marker, or an off-board sentinel. The Board is the sole owner of the
// array; all addressing goes through the Square mailbox mapping.
//
// The 56 sentinel cells are the point of the layout: walking off the
// real board from any playable square by any piece offset lands on a
// sentinel instead of wrapping, so offset arithmetic needs no bounds
// checks.
type Board struct {
	cells [MailboxSize]Cell
}

// NewBoard returns a board with every playable square empty and every
// sentinel cell off-board. This is the scaffold both for the standard
// setup and for ad-hoc test positions.
func NewBoard() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = CellOffBoard
	}
	for sq := A1; sq <= H8; sq++ {
		b.cells[sq.Mailbox()] = CellEmpty
	}
	return b
}

// At returns the cell at a playable square. It never returns
// CellOffBoard.
func (b *Board) At(sq Square) Cell {
	return b.cells[sq.Mailbox()]
}

// Set writes a cell at a playable square. Chess legality is not
// enforced here; callers may place any piece or clear to empty.
func (b *Board) Set(sq Square, c Cell) {
	b.cells[sq.Mailbox()] = c
}

// Clear resets a playable square to empty.
func (b *Board) Clear(sq Square) {
	b.cells[sq.Mailbox()] = CellEmpty
}

// Raw reads a mailbox cell by raw index. Indices outside the array
// read as off-board, like the sentinels inside it, so offset walks by
// future move generation never need a defensive bounds check.
func (b *Board) Raw(idx int) Cell {
	if idx < 0 || idx >= MailboxSize {
		return CellOffBoard
	}
	return b.cells[idx]
}
