package board

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderStandardStart(t *testing.T) {
	want := []string{
		"♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜",
		"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
		"♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜",
	}

	got := Render(StandardStart())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderShape(t *testing.T) {
	lines := Render(StandardStart())
	if len(lines) != 8 {
		t.Fatalf("Render returned %d lines; want 8", len(lines))
	}
	for i, line := range lines {
		cells := strings.Fields(line)
		if len(cells) != 8 {
			t.Errorf("line %d has %d cells; want 8", i, len(cells))
		}
	}
}

func TestRenderOrientation(t *testing.T) {
	// A lone white king on a8 must appear in the first line, first cell;
	// a lone black pawn on h1 in the last line, last cell.
	pos := EmptyPosition()
	pos.Place(A8, NewCell(WhiteKing))
	pos.Place(H1, NewCell(BlackPawn))

	lines := Render(pos)
	top := strings.Fields(lines[0])
	bottom := strings.Fields(lines[7])

	if top[0] != "♚" {
		t.Errorf("top-left cell = %q; want the king glyph", top[0])
	}
	if bottom[7] != "♟" {
		t.Errorf("bottom-right cell = %q; want the pawn glyph", bottom[7])
	}
}

func TestRenderEmpty(t *testing.T) {
	for _, line := range Render(EmptyPosition()) {
		if line != ". . . . . . . ." {
			t.Errorf("empty board line = %q", line)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	pos := StandardStart()
	first := Render(pos)
	second := Render(pos)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Render differs (-first +second):\n%s", diff)
	}
}

func TestRenderIgnoresAuxiliaryState(t *testing.T) {
	pos := StandardStart()
	before := Render(pos)

	pos.SetSideToMove(Black)
	pos.SetCastlingRights(NoCastling)
	pos.SetEnPassant(E3)
	pos.SetHalfMoveClock(99)

	if diff := cmp.Diff(before, Render(pos)); diff != "" {
		t.Errorf("auxiliary state leaked into Render (-before +after):\n%s", diff)
	}
}

func TestRenderString(t *testing.T) {
	s := RenderString(StandardStart())
	if !strings.HasPrefix(s, "8  ♜") {
		t.Errorf("RenderString should start with the labelled 8th rank, got %q", s[:10])
	}
	if !strings.Contains(s, "a b c d e f g h") {
		t.Error("RenderString should end with the file legend")
	}
}
