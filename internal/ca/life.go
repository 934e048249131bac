// Package ca holds small cellular-automaton engines used only as example
// sources for the wfc learner: each one runs for a handful of steps and
// its final grid becomes a training Tilemap, the same way a hand-drawn
// bitmap would.
package ca

import (
	"math/rand/v2"

	"tilewave/pkg/core"
)

// Life is a toroidal Conway's Game of Life grid.
type Life struct {
	w, h int
	cur  []uint8
	tmp  []uint8
}

// NewLife constructs a w×h Life grid, all cells dead.
func NewLife(w, h int) *Life {
	return &Life{w: w, h: h, cur: make([]uint8, w*h), tmp: make([]uint8, w*h)}
}

// Reset seeds every cell alive or dead with equal probability.
func (l *Life) Reset(seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	core.FillBinary(rng, l.cur)
}

// Size returns the grid dimensions.
func (l *Life) Size() (int, int) { return l.w, l.h }

// Cells returns the current generation, row-major.
func (l *Life) Cells() []uint8 { return l.cur }

func (l *Life) wrap(x, y int) int {
	x = ((x % l.w) + l.w) % l.w
	y = ((y % l.h) + l.h) % l.h
	return y*l.w + x
}

// Step advances the grid by one generation using the standard 8-neighbor
// toroidal rule.
func (l *Life) Step() {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if l.cur[l.wrap(x+dx, y+dy)] != 0 {
						n++
					}
				}
			}
			idx := y*l.w + x
			alive := l.cur[idx] != 0
			switch {
			case alive && (n == 2 || n == 3):
				l.tmp[idx] = 1
			case !alive && n == 3:
				l.tmp[idx] = 1
			default:
				l.tmp[idx] = 0
			}
		}
	}
	l.cur, l.tmp = l.tmp, l.cur
}
