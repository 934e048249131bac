package ecology

// Params controls terrain generation and vegetation succession.
type Params struct {
	RockChance float64

	GrassPatchCount     int
	GrassPatchRadiusMin int
	GrassPatchRadiusMax int
	GrassPatchDensity   float64

	GrassNeighborThreshold int
	ShrubNeighborThreshold int
	TreeNeighborThreshold  int

	GrassSpreadChance float64
	ShrubGrowthChance float64
	TreeGrowthChance  float64
}

// Config bundles a world's size, seed, and generation Params.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Params Params
}

// DefaultConfig returns reasonable defaults for a 64x64 world.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 64,
		Seed:   1,
		Params: Params{
			RockChance:             0.06,
			GrassPatchCount:        6,
			GrassPatchRadiusMin:    3,
			GrassPatchRadiusMax:    8,
			GrassPatchDensity:      0.7,
			GrassNeighborThreshold: 2,
			ShrubNeighborThreshold: 3,
			TreeNeighborThreshold:  4,
			GrassSpreadChance:      0.18,
			ShrubGrowthChance:      0.05,
			TreeGrowthChance:       0.03,
		},
	}
}
