package diagram

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/calebsm/fianchetto/internal/board"
)

// Theme defines the colors of the rendered board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
	}
}

// Renderer rasterizes positions into board diagrams.
type Renderer struct {
	sprites    *SpriteSet
	theme      *Theme
	squareSize int
	face       font.Face
}

// NewRenderer creates a renderer with the given square size in pixels.
func NewRenderer(squareSize int) (*Renderer, error) {
	sprites, err := NewSpriteSet(squareSize)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(squareSize) / 5,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{
		sprites:    sprites,
		theme:      DefaultTheme(),
		squareSize: squareSize,
		face:       face,
	}, nil
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(t *Theme) {
	r.theme = t
}

// BoardSize returns the diagram edge length in pixels.
func (r *Renderer) BoardSize() int {
	return 8 * r.squareSize
}

// Image renders the position as an 8x8 checkered diagram with piece
// sprites and coordinate labels, rank 8 at the top.
func (r *Renderer) Image(pos *board.Position) *image.RGBA {
	size := r.BoardSize()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * r.squareSize
			y := (7 - rank) * r.squareSize
			rect := image.Rect(x, y, x+r.squareSize, y+r.squareSize)

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)

			sq := board.NewSquare(board.File(file), board.Rank(rank))
			if piece := pos.PieceAt(sq); piece != board.NoPiece {
				sprite := r.sprites.Piece(piece)
				draw.Draw(img, rect, sprite, image.Point{}, draw.Over)
			}
		}
	}

	r.drawCoordinates(img)
	return img
}

// WritePNG renders the position and encodes it as PNG.
func (r *Renderer) WritePNG(w io.Writer, pos *board.Position) error {
	return png.Encode(w, r.Image(pos))
}

// drawCoordinates labels the a-file squares with rank digits and the
// first-rank squares with file letters, each in the opposite square
// color for contrast.
func (r *Renderer) drawCoordinates(img *image.RGBA) {
	labelColor := func(rank, file int) color.RGBA {
		if (rank+file)%2 == 0 {
			return r.theme.LightSquare
		}
		return r.theme.DarkSquare
	}

	drawer := &font.Drawer{
		Dst:  img,
		Face: r.face,
	}

	for rank := 0; rank < 8; rank++ {
		y := (7 - rank) * r.squareSize
		drawer.Src = &image.Uniform{labelColor(rank, 0)}
		drawer.Dot = fixed.P(3, y+r.squareSize/5+2)
		drawer.DrawString(string(rune(board.Rank(rank).Char())))
	}

	for file := 0; file < 8; file++ {
		x := file * r.squareSize
		drawer.Src = &image.Uniform{labelColor(0, file)}
		drawer.Dot = fixed.P(x+r.squareSize-r.squareSize/5, 8*r.squareSize-4)
		drawer.DrawString(string(rune(board.File(file).Char())))
	}
}
