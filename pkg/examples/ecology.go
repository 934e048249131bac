package examples

import (
	"tilewave/internal/ecology"
	"tilewave/internal/wfc"
)

func init() {
	Register("ecology", ecologySource)
}

const ecologyWarmupSteps = 40

// ecologySource runs the terrain/vegetation succession model for a fixed
// warm-up period so grass has had a chance to spread and thicken before
// the learner sees it.
func ecologySource(w, h int, seed int64) wfc.Tilemap {
	cfg := ecology.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	world := ecology.NewWithConfig(cfg)
	world.Reset(seed)
	for i := 0; i < ecologyWarmupSteps; i++ {
		world.Step()
	}
	return tilemapFromCells(world.Cells(), w, h)
}
