package examples

import (
	"tilewave/internal/ca"
	"tilewave/internal/wfc"
)

func init() {
	Register("life", lifeSource)
	Register("briansbrain", briansBrainSource)
	Register("elementary", elementarySource)
}

const caWarmupSteps = 24

// lifeSource runs Conway's Life for a fixed warm-up period so the
// learner sees settled gliders and blocks rather than raw static.
func lifeSource(w, h int, seed int64) wfc.Tilemap {
	sim := ca.NewLife(w, h)
	sim.Reset(seed)
	for i := 0; i < caWarmupSteps; i++ {
		sim.Step()
	}
	return tilemapFromCells(sim.Cells(), w, h)
}

func briansBrainSource(w, h int, seed int64) wfc.Tilemap {
	sim := ca.NewBriansBrain(w, h)
	sim.Reset(seed)
	for i := 0; i < caWarmupSteps; i++ {
		sim.Step()
	}
	return tilemapFromCells(sim.Cells(), w, h)
}

// elementarySource runs Wolfram rule 110, a well-known source of
// structured-but-nontrivial bands, and returns its full history as the
// training image.
func elementarySource(w, h int, seed int64) wfc.Tilemap {
	sim := ca.NewElementary(w, h, 110)
	sim.Reset(seed)
	for i := 0; i < h-1; i++ {
		sim.Step()
	}
	return tilemapFromCells(sim.Cells(), w, h)
}

func tilemapFromCells(cells []uint8, w, h int) wfc.Tilemap {
	img := make(wfc.Tilemap, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = int(cells[y*w+x])
		}
		img[y] = row
	}
	return img
}
