package ca

import "math/rand/v2"

const (
	brainDead  uint8 = 0
	brainOn    uint8 = 1
	brainDying uint8 = 2
)

// BriansBrain is a toroidal three-state Brian's Brain automaton.
type BriansBrain struct {
	w, h int
	cur  []uint8
	tmp  []uint8
}

// NewBriansBrain constructs a w×h grid, all cells dead.
func NewBriansBrain(w, h int) *BriansBrain {
	return &BriansBrain{w: w, h: h, cur: make([]uint8, w*h), tmp: make([]uint8, w*h)}
}

// Reset seeds roughly one in eight cells as on.
func (b *BriansBrain) Reset(seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	for i := range b.cur {
		if rng.IntN(8) == 0 {
			b.cur[i] = brainOn
		} else {
			b.cur[i] = brainDead
		}
	}
}

// Size returns the grid dimensions.
func (b *BriansBrain) Size() (int, int) { return b.w, b.h }

// Cells returns the current generation, row-major.
func (b *BriansBrain) Cells() []uint8 { return b.cur }

func (b *BriansBrain) wrap(x, y int) int {
	x = ((x % b.w) + b.w) % b.w
	y = ((y % b.h) + b.h) % b.h
	return y*b.w + x
}

// Step advances the grid by one generation: dead cells with exactly two
// on neighbors turn on, on cells become dying, dying cells die.
func (b *BriansBrain) Step() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			idx := y*b.w + x
			switch b.cur[idx] {
			case brainOn:
				b.tmp[idx] = brainDying
			case brainDying:
				b.tmp[idx] = brainDead
			default:
				onNeighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if b.cur[b.wrap(x+dx, y+dy)] == brainOn {
							onNeighbors++
						}
					}
				}
				if onNeighbors == 2 {
					b.tmp[idx] = brainOn
				} else {
					b.tmp[idx] = brainDead
				}
			}
		}
	}
	b.cur, b.tmp = b.tmp, b.cur
}
