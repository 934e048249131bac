package examples

import (
	"math/rand/v2"

	"tilewave/internal/wfc"
)

func init() {
	Register("stripes", stripes)
}

// stripes draws horizontal bands of varying thickness, alternating
// between tiles 0 and 1. Its only adjacency constraint is along the
// vertical axis, making it a good check that the learner doesn't invent
// horizontal structure that isn't there.
func stripes(w, h int, seed int64) wfc.Tilemap {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	img := make(wfc.Tilemap, h)
	tile := 0
	remaining := 1 + rng.IntN(3)
	for y := 0; y < h; y++ {
		if remaining == 0 {
			tile = 1 - tile
			remaining = 1 + rng.IntN(3)
		}
		remaining--
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = tile
		}
		img[y] = row
	}
	return img
}
