// Package ui implements the board viewer window using Ebitengine.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/calebsm/fianchetto/internal/board"
	"github.com/calebsm/fianchetto/internal/diagram"
)

// UI Constants
const (
	SquareSize   = 80
	ScreenWidth  = 8 * SquareSize
	ScreenHeight = 8 * SquareSize
)

// Viewer implements ebiten.Game. It displays a single static position;
// interaction arrives with move generation, not before.
type Viewer struct {
	boardImage *ebiten.Image
}

// NewViewer renders the position once and wraps it for display.
func NewViewer(pos *board.Position) (*Viewer, error) {
	renderer, err := diagram.NewRenderer(SquareSize)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		boardImage: ebiten.NewImageFromImage(renderer.Image(pos)),
	}, nil
}

// SetPosition re-renders the viewer for a new position.
func (v *Viewer) SetPosition(pos *board.Position) error {
	renderer, err := diagram.NewRenderer(SquareSize)
	if err != nil {
		return err
	}
	v.boardImage = ebiten.NewImageFromImage(renderer.Image(pos))
	return nil
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.boardImage, nil)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
