// Fianchetto - a mailbox chess board viewer built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/calebsm/fianchetto/internal/board"
	"github.com/calebsm/fianchetto/internal/ui"
)

var fen = flag.String("fen", board.StartFEN, "position to display, in FEN")

func main() {
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	viewer, err := ui.NewViewer(pos)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Fianchetto")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
