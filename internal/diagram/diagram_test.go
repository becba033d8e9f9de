package diagram

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/calebsm/fianchetto/internal/board"
)

func TestSpriteSet(t *testing.T) {
	ss, err := NewSpriteSet(64)
	if err != nil {
		t.Fatalf("NewSpriteSet failed: %v", err)
	}
	if ss.Size() != 64 {
		t.Errorf("Size() = %d; want 64", ss.Size())
	}

	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			piece := board.NewPiece(pt, c)
			sprite := ss.Piece(piece)
			if sprite == nil {
				t.Fatalf("no sprite for %s %s", c, pt)
			}
			if got := sprite.Bounds().Dx(); got != 64 {
				t.Errorf("%s %s sprite width = %d; want 64", c, pt, got)
			}

			// Something must actually be drawn.
			opaque := 0
			for i := 3; i < len(sprite.Pix); i += 4 {
				if sprite.Pix[i] != 0 {
					opaque++
				}
			}
			if opaque == 0 {
				t.Errorf("%s %s sprite is fully transparent", c, pt)
			}
		}
	}

	if ss.Piece(board.NoPiece) != nil {
		t.Error("NoPiece should have no sprite")
	}
}

func TestImageGeometry(t *testing.T) {
	r, err := NewRenderer(40)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if r.BoardSize() != 320 {
		t.Errorf("BoardSize() = %d; want 320", r.BoardSize())
	}

	img := r.Image(board.StandardStart())
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 320 {
		t.Errorf("image bounds = %v; want 320x320", img.Bounds())
	}
}

func TestImageSquareColors(t *testing.T) {
	r, err := NewRenderer(40)
	if err != nil {
		t.Fatal(err)
	}
	theme := DefaultTheme()
	img := r.Image(board.EmptyPosition())

	// e4 is a light square, d4 a dark one; sample the square centers.
	// e4: file 4, rank 3 -> x 180, y 180. d4: file 3, rank 3 -> x 140.
	if got := img.RGBAAt(180, 180); got != theme.LightSquare {
		t.Errorf("e4 center = %v; want light %v", got, theme.LightSquare)
	}
	if got := img.RGBAAt(140, 180); got != theme.DarkSquare {
		t.Errorf("d4 center = %v; want dark %v", got, theme.DarkSquare)
	}
}

func TestWritePNG(t *testing.T) {
	r, err := NewRenderer(32)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf, board.StandardStart()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Errorf("decoded width = %d; want 256", img.Bounds().Dx())
	}
}
