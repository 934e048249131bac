// Command wfc is a headless CLI around the tilewave solver: it learns a
// model from a registered example source and prints the generated
// tilemap as a grid of tile ids.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"tilewave/internal/wfc"
	"tilewave/pkg/examples"
)

func main() {
	var (
		source      = flag.String("source", "checker", "example source to learn from (see -list)")
		n           = flag.Int("n", 2, "pattern size N")
		width       = flag.Int("width", 32, "output width in tiles")
		height      = flag.Int("height", 32, "output height in tiles")
		sourceSize  = flag.Int("source-size", 24, "size of the generated training image")
		seed        = flag.Int64("seed", 1, "RNG seed")
		maxAttempts = flag.Int("max-attempts", 50, "maximum retry attempts")
		list        = flag.Bool("list", false, "list available example sources and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range examples.Sources() {
			fmt.Println(name)
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

	rng := rand.New(rand.NewPCG(uint64(*seed), uint64(*seed)>>1|1))
	out, attempts, ok2, err := model.Generate(context.Background(), *width, *height, *maxAttempts, rng)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if !ok2 {
		fmt.Fprintf(os.Stderr, "did not converge within %d attempts\n", *maxAttempts)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "converged after %d attempt(s)\n", attempts)
	fmt.Println(renderTilemap(out))
}

func renderTilemap(tm wfc.Tilemap) string {
	var b strings.Builder
	for _, row := range tm {
		for x, tile := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", tile)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
