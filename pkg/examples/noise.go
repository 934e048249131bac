package examples

import (
	"math/rand/v2"

	"tilewave/internal/wfc"
)

func init() {
	Register("noise", noise)
}

// noise fills every cell independently with tile 0 or 1. Learning from
// it produces a model with no spatial structure at all, useful as a
// baseline for comparing against more structured sources.
func noise(w, h int, seed int64) wfc.Tilemap {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	img := make(wfc.Tilemap, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = rng.IntN(2)
		}
		img[y] = row
	}
	return img
}
