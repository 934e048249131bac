//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilewave/internal/app"
	"tilewave/internal/wfc"
	"tilewave/pkg/examples"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		source      = flag.String("source", "checker", "example source to learn from (see -list)")
		n           = flag.Int("n", 2, "pattern size N")
		width       = flag.Int("width", 48, "output width in tiles")
		height      = flag.Int("height", 48, "output height in tiles")
		sourceSize  = flag.Int("source-size", 32, "size of the generated training image")
		scale       = flag.Int("scale", 12, "pixels per tile")
		seed        = flag.Int64("seed", 1, "base RNG seed")
		maxAttempts = flag.Int("max-attempts", 50, "maximum retry attempts per generate call")
		pinTopLeft  = flag.Bool("pin-top-left", false, "pin the top-left output cell to pattern 0 (press 1 to see it highlighted)")
		list        = flag.Bool("list", false, "list available example sources and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range examples.Sources() {
			log.Println(name)
		}
		return
	}

	factory, ok := examples.Get(*source)
	if !ok {
		log.Fatalf("unknown source %q (see -list)", *source)
	}

	img := factory(*sourceSize, *sourceSize, *seed)
	model, err := wfc.NewModel([]wfc.Tilemap{img}, *n)
	if err != nil {
		log.Fatalf("learning from %q: %v", *source, err)
	}
	if *pinTopLeft {
		if err := model.PresetTile(0, 0, 0); err != nil {
			log.Fatalf("pinning top-left cell: %v", err)
		}
	}

	game := app.New(model, *width, *height, *scale, *maxAttempts, *seed)

	ebiten.SetWindowTitle("tilewave — " + *source)
	ebiten.SetWindowSize(*width * *scale+220, *height * *scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
