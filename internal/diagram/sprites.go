// Package diagram renders positions as raster board diagrams.
package diagram

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/calebsm/fianchetto/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// The assets are authored once per piece kind with a white fill; black
// sprites swap the fill before parsing. The outline stroke is shared.
const (
	whiteFill = "#ffffff"
	blackFill = "#312e2b"
)

// kindFiles maps piece kinds to their asset file paths.
var kindFiles = map[board.PieceType]string{
	board.Pawn:   "assets/pieces/pawn.svg",
	board.Knight: "assets/pieces/knight.svg",
	board.Bishop: "assets/pieces/bishop.svg",
	board.Rook:   "assets/pieces/rook.svg",
	board.Queen:  "assets/pieces/queen.svg",
	board.King:   "assets/pieces/king.svg",
}

// SpriteSet holds rasterized piece sprites at a fixed square size.
type SpriteSet struct {
	pieces map[board.Piece]*image.RGBA
	size   int
}

// NewSpriteSet rasterizes all twelve piece sprites at the given size.
func NewSpriteSet(size int) (*SpriteSet, error) {
	ss := &SpriteSet{
		pieces: make(map[board.Piece]*image.RGBA),
		size:   size,
	}

	for pt, path := range kindFiles {
		for c := board.White; c <= board.Black; c++ {
			sprite, err := renderSprite(path, c, size)
			if err != nil {
				return nil, fmt.Errorf("rendering %s %s: %w", c, pt, err)
			}
			ss.pieces[board.NewPiece(pt, c)] = sprite
		}
	}

	return ss, nil
}

// Piece returns the sprite for a piece, nil for NoPiece.
func (ss *SpriteSet) Piece(p board.Piece) *image.RGBA {
	return ss.pieces[p]
}

// Size returns the sprite edge length in pixels.
func (ss *SpriteSet) Size() int {
	return ss.size
}

// renderSprite parses one SVG asset, tinted for the color, and
// rasterizes it with anti-aliasing.
func renderSprite(path string, c board.Color, size int) (*image.RGBA, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if c == board.Black {
		data = bytes.ReplaceAll(data, []byte(whiteFill), []byte(blackFill))
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
