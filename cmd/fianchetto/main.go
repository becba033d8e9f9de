package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/calebsm/fianchetto/internal/board"
	"github.com/calebsm/fianchetto/internal/diagram"
	"github.com/calebsm/fianchetto/internal/storage"
)

var (
	fen     = flag.String("fen", "", "position in FEN (default: standard start)")
	load    = flag.String("load", "", "load a saved position by name")
	save    = flag.String("save", "", "save the position under this name")
	delName = flag.String("delete", "", "delete a saved position by name")
	list    = flag.Bool("list", false, "list saved positions")
	pngPath = flag.String("png", "", "write a PNG diagram to this path")
	size    = flag.Int("size", 80, "square size in pixels for -png")
)

func main() {
	flag.Parse()

	if *list || *save != "" || *load != "" || *delName != "" {
		runWithStore()
		return
	}

	pos := resolvePosition(nil)
	show(pos)
}

// runWithStore handles all flags that need the position store open.
func runWithStore() {
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatal("opening position store: ", err)
	}
	defer store.Close()

	if *delName != "" {
		if err := store.DeletePosition(*delName); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("deleted %q\n", *delName)
		return
	}

	if *list {
		records, err := store.ListPositions()
		if err != nil {
			log.Fatal(err)
		}
		if len(records) == 0 {
			fmt.Println("no saved positions")
			return
		}
		for _, r := range records {
			fmt.Printf("%-20s %s  (saved %s)\n", r.Name, r.FEN, r.SavedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	pos := resolvePosition(store)

	if *save != "" {
		if err := store.SavePosition(*save, pos); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("saved %q\n", *save)
	}

	show(pos)
}

// resolvePosition picks the position from -load, -fen or the standard
// start, in that order.
func resolvePosition(store *storage.Storage) *board.Position {
	if *load != "" {
		if store == nil {
			log.Fatal("-load requires the position store")
		}
		pos, err := store.LoadPosition(*load)
		if err != nil {
			log.Fatal(err)
		}
		return pos
	}

	if *fen != "" {
		pos, err := board.ParseFEN(*fen)
		if err != nil {
			log.Fatal(err)
		}
		return pos
	}

	return board.StandardStart()
}

// show prints the position and optionally exports the PNG diagram.
func show(pos *board.Position) {
	fmt.Print(board.RenderString(pos))
	fmt.Println()
	fmt.Println("FEN:", pos.FEN())

	if *pngPath == "" {
		return
	}

	renderer, err := diagram.NewRenderer(*size)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*pngPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := renderer.WritePNG(f, pos); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", *pngPath)
}
