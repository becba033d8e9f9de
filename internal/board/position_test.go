package board

import "testing"

func TestStandardStartLayout(t *testing.T) {
	pos := StandardStart()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	for file := FileA; file <= FileH; file++ {
		if got := pos.PieceAt(NewSquare(file, Rank1)); got != NewPiece(backRank[file], White) {
			t.Errorf("white back rank at %c1: got %v", file.Char(), got)
		}
		if got := pos.PieceAt(NewSquare(file, Rank2)); got != WhitePawn {
			t.Errorf("%c2: got %v; want white pawn", file.Char(), got)
		}
		if got := pos.PieceAt(NewSquare(file, Rank7)); got != BlackPawn {
			t.Errorf("%c7: got %v; want black pawn", file.Char(), got)
		}
		if got := pos.PieceAt(NewSquare(file, Rank8)); got != NewPiece(backRank[file], Black) {
			t.Errorf("black back rank at %c8: got %v", file.Char(), got)
		}
	}

	if pos.PieceAt(E1) != WhiteKing {
		t.Error("e1 should hold the white king")
	}
	if pos.PieceAt(E8) != BlackKing {
		t.Error("e8 should hold the black king")
	}

	for rank := Rank3; rank <= Rank6; rank++ {
		for file := FileA; file <= FileH; file++ {
			sq := NewSquare(file, rank)
			if !pos.IsEmpty(sq) {
				t.Errorf("%s should be empty at the start", sq)
			}
		}
	}
}

func TestStandardStartState(t *testing.T) {
	pos := StandardStart()

	if pos.SideToMove() != White {
		t.Error("white moves first")
	}
	if pos.CastlingRights() != AllCastling {
		t.Errorf("castling rights = %s; want KQkq", pos.CastlingRights())
	}
	if pos.EnPassant() != NoSquare {
		t.Errorf("en passant = %s; want none", pos.EnPassant())
	}
	if pos.HalfMoveClock() != 0 {
		t.Errorf("half-move clock = %d; want 0", pos.HalfMoveClock())
	}
	if pos.FullMoveNumber() != 1 {
		t.Errorf("full move = %d; want 1", pos.FullMoveNumber())
	}
}

func TestEmptyPosition(t *testing.T) {
	pos := EmptyPosition()

	for sq := A1; sq <= H8; sq++ {
		if got := pos.CellAt(sq); got != CellEmpty {
			t.Errorf("CellAt(%s) = %v; want CellEmpty", sq, got)
		}
	}
	if pos.SideToMove() != White {
		t.Error("empty position should default to white to move")
	}
	if pos.CastlingRights() != NoCastling {
		t.Error("empty position should have no castling rights")
	}
	if pos.EnPassant() != NoSquare {
		t.Error("empty position should have no en passant target")
	}
	if pos.FullMoveNumber() != 1 {
		t.Error("full move number should start at 1")
	}
}

func TestPlaceAndRemove(t *testing.T) {
	pos := EmptyPosition()

	pos.Place(D5, NewCell(BlackQueen))
	if got := pos.PieceAt(D5); got != BlackQueen {
		t.Fatalf("PieceAt(d5) = %v; want black queen", got)
	}

	if got := pos.Remove(D5); got != BlackQueen {
		t.Errorf("Remove(d5) = %v; want black queen", got)
	}
	if !pos.IsEmpty(D5) {
		t.Error("d5 should be empty after Remove")
	}
	if got := pos.Remove(D5); got != NoPiece {
		t.Errorf("Remove on empty square = %v; want NoPiece", got)
	}
}

func TestStateSetters(t *testing.T) {
	pos := EmptyPosition()

	pos.SetSideToMove(Black)
	if pos.SideToMove() != Black {
		t.Error("SetSideToMove did not stick")
	}

	pos.SetCastlingRights(WhiteKingSideCastle | BlackQueenSideCastle)
	if !pos.CastlingRights().CanCastle(White, true) {
		t.Error("white kingside right missing")
	}
	if pos.CastlingRights().CanCastle(White, false) {
		t.Error("white queenside right should be absent")
	}
	if !pos.CastlingRights().CanCastle(Black, false) {
		t.Error("black queenside right missing")
	}

	pos.SetEnPassant(E3)
	if pos.EnPassant() != E3 {
		t.Error("SetEnPassant did not stick")
	}
	pos.SetEnPassant(NoSquare)
	if pos.EnPassant() != NoSquare {
		t.Error("SetEnPassant(NoSquare) should clear the target")
	}

	pos.SetHalfMoveClock(13)
	pos.SetFullMoveNumber(42)
	if pos.HalfMoveClock() != 13 || pos.FullMoveNumber() != 42 {
		t.Error("counter setters did not stick")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	pos := StandardStart()
	cp := pos.Copy()

	cp.Place(E4, NewCell(WhitePawn))
	cp.Remove(E2)
	cp.SetSideToMove(Black)

	if !pos.IsEmpty(E4) {
		t.Error("mutating the copy leaked into the original board")
	}
	if pos.PieceAt(E2) != WhitePawn {
		t.Error("removing on the copy cleared the original's e2")
	}
	if pos.SideToMove() != White {
		t.Error("mutating the copy changed the original's side to move")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		cr   CastlingRights
		want string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingSideCastle, "K"},
		{WhiteQueenSideCastle | BlackKingSideCastle, "Qk"},
	}

	for _, tt := range tests {
		if got := tt.cr.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.cr, got, tt.want)
		}
	}
}

func TestPositionBoardInvariant(t *testing.T) {
	positions := []*Position{
		StandardStart(),
		EmptyPosition(),
	}

	for _, pos := range positions {
		pos.Place(A1, NewCell(WhiteRook))
		for sq := A1; sq <= H8; sq++ {
			if pos.CellAt(sq).IsOffBoard() {
				t.Errorf("CellAt(%s) is off-board", sq)
			}
		}
	}
}
