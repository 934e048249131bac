package wfc

import "fmt"

// waveMatrix is an H×W grid of per-cell possibility bitmasks. Its
// invariant during a solver attempt: for every collapsed cell at (y, x)
// with sole pattern p, every in-bounds neighbor at direction d is a subset
// of Adjacency[p][d]. Propagation exists to enforce that invariant; the
// wave itself only stores state.
type waveMatrix struct {
	P, W, H int
	cells   []Bitmask // row-major, length W*H
}

func newWaveMatrix(p, w, h int) *waveMatrix {
	cells := make([]Bitmask, w*h)
	for i := range cells {
		cells[i] = newBitmask(p)
	}
	return &waveMatrix{P: p, W: w, H: h, cells: cells}
}

// initialize resets every cell to the full mask [0, P).
func (wm *waveMatrix) initialize() {
	for i := range wm.cells {
		wm.cells[i].SetAll()
	}
}

// applyPresets overwrites the indicated cells' masks with the supplied
// masks. The caller is responsible for ensuring presets are mutually
// consistent; propagation surfaces any resulting contradiction.
func (wm *waveMatrix) applyPresets(presets []Preset) error {
	for _, preset := range presets {
		if preset.X < 0 || preset.X >= wm.W || preset.Y < 0 || preset.Y >= wm.H {
			return fmt.Errorf("%w: preset (%d,%d) outside %dx%d grid", ErrInvalidInput, preset.X, preset.Y, wm.W, wm.H)
		}
		wm.at(preset.X, preset.Y).ClearAll()
		wm.at(preset.X, preset.Y).OrInto(preset.Mask)
	}
	return nil
}

// at returns the cell mask at (x, y). The returned Bitmask shares backing
// storage with the wave, so callers mutate it in place.
func (wm *waveMatrix) at(x, y int) Bitmask {
	return wm.cells[y*wm.W+x]
}

func (wm *waveMatrix) inBounds(x, y int) bool {
	return x >= 0 && x < wm.W && y >= 0 && y < wm.H
}
