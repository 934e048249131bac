// Package ecology is a small terrain-and-vegetation succession model used
// as an example Tilemap source: it is cheap to run for a handful of steps
// and produces spatially coherent tile clusters, the kind of input the
// wfc learner benefits from seeing beyond hand-drawn bitmaps.
package ecology

import "math/rand/v2"

// Ground is the static terrain layer; it never changes after generation.
type Ground uint8

const (
	GroundDirt Ground = iota
	GroundRock
)

// Vegetation is the dynamic layer that succession advances over time.
type Vegetation uint8

const (
	VegetationNone Vegetation = iota
	VegetationGrass
	VegetationShrub
	VegetationTree
)

// World holds the ground and vegetation layers for a w×h grid.
type World struct {
	cfg Config
	w, h int
	ground     []Ground
	veg        []Vegetation
	vegNext    []Vegetation
	rng        *rand.Rand
}

// New constructs a world with DefaultConfig sized to w×h.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a world from an explicit Config.
func NewWithConfig(cfg Config) *World {
	w, h := cfg.Width, cfg.Height
	return &World{
		cfg:     cfg,
		w:       w,
		h:       h,
		ground:  make([]Ground, w*h),
		veg:     make([]Vegetation, w*h),
		vegNext: make([]Vegetation, w*h),
	}
}

// Size returns the grid dimensions.
func (w *World) Size() (int, int) { return w.w, w.h }

// Reset regenerates terrain and seeds the initial vegetation patches
// deterministically from seed.
func (wd *World) Reset(seed int64) {
	wd.cfg.Seed = seed
	wd.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	for i := range wd.ground {
		wd.ground[i] = GroundDirt
		wd.veg[i] = VegetationNone
	}
	wd.sprinkleRock()
	wd.seedGrassPatches()
}

// Cells returns the packed tile ids: ground in bit 0, vegetation in bits
// 1-2.
func (wd *World) Cells() []uint8 {
	out := make([]uint8, len(wd.ground))
	for i := range out {
		out[i] = encodeTile(wd.ground[i], wd.veg[i])
	}
	return out
}

func encodeTile(g Ground, v Vegetation) uint8 {
	return uint8(g)&0x01 | (uint8(v)<<1)&0x06
}

func (wd *World) idx(x, y int) int { return y*wd.w + x }

func (wd *World) inBounds(x, y int) bool {
	return x >= 0 && x < wd.w && y >= 0 && y < wd.h
}

func (wd *World) sprinkleRock() {
	p := wd.cfg.Params
	for i := range wd.ground {
		if wd.rng.Float64() < p.RockChance {
			wd.ground[i] = GroundRock
		}
	}
}

func (wd *World) seedGrassPatches() {
	p := wd.cfg.Params
	if p.GrassPatchCount <= 0 || wd.w == 0 || wd.h == 0 {
		return
	}
	for i := 0; i < p.GrassPatchCount; i++ {
		cx := wd.rng.IntN(wd.w)
		cy := wd.rng.IntN(wd.h)
		radius := p.GrassPatchRadiusMin
		if p.GrassPatchRadiusMax > p.GrassPatchRadiusMin {
			radius += wd.rng.IntN(p.GrassPatchRadiusMax - p.GrassPatchRadiusMin + 1)
		}
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				x, y := cx+dx, cy+dy
				if !wd.inBounds(x, y) {
					continue
				}
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				idx := wd.idx(x, y)
				if wd.ground[idx] != GroundDirt {
					continue
				}
				if wd.rng.Float64() < p.GrassPatchDensity {
					wd.veg[idx] = VegetationGrass
				}
			}
		}
	}
}

// Step advances vegetation succession by one generation: grass spreads
// onto bare dirt near existing grass, then grass can thicken into shrub,
// then shrub into tree, each gated by a neighbor-count threshold and a
// random growth chance.
func (wd *World) Step() {
	p := wd.cfg.Params
	for y := 0; y < wd.h; y++ {
		for x := 0; x < wd.w; x++ {
			idx := wd.idx(x, y)
			wd.vegNext[idx] = wd.veg[idx]
			if wd.ground[idx] != GroundDirt {
				continue
			}
			grassN, shrubN, _ := wd.mooreNeighborCounts(x, y)
			switch wd.veg[idx] {
			case VegetationNone:
				if grassN >= p.GrassNeighborThreshold && wd.rng.Float64() < p.GrassSpreadChance {
					wd.vegNext[idx] = VegetationGrass
				}
			case VegetationGrass:
				if grassN >= p.ShrubNeighborThreshold && wd.rng.Float64() < p.ShrubGrowthChance {
					wd.vegNext[idx] = VegetationShrub
				}
			case VegetationShrub:
				if shrubN >= p.TreeNeighborThreshold && wd.rng.Float64() < p.TreeGrowthChance {
					wd.vegNext[idx] = VegetationTree
				}
			}
		}
	}
	wd.veg, wd.vegNext = wd.vegNext, wd.veg
}

// mooreNeighborCounts counts grass, shrub and tree cells in the 8-neighbor
// bounded (not toroidal) neighborhood of (x, y).
func (wd *World) mooreNeighborCounts(x, y int) (grass, shrub, tree int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !wd.inBounds(nx, ny) {
				continue
			}
			switch wd.veg[wd.idx(nx, ny)] {
			case VegetationGrass:
				grass++
			case VegetationShrub:
				shrub++
			case VegetationTree:
				tree++
			}
		}
	}
	return
}
