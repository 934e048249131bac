package wfc

import "fmt"

// LearnedModel is the immutable output of Learn: a pattern table, its
// per-pattern weights, and the four-directional adjacency bitmasks. It is
// safe to share across many concurrent Solve/Model.Generate calls — every
// field is written once, during Learn, and never mutated afterward.
type LearnedModel struct {
	N         int
	Patterns  []Pattern
	Weights   []int
	Adjacency [][numDirections]Bitmask // Adjacency[i][d] = patterns allowed at direction d of pattern i
}

// P returns the number of distinct learned patterns.
func (m *LearnedModel) P() int { return len(m.Patterns) }

// Learn extracts every N×N window from each image (row-major, per image in
// the order given, no periodic wrap), deduplicates them into a pattern
// table, counts occurrences into Weights, and derives the four-directional
// adjacency bitmasks from the §3 overlap rule. The result is deterministic:
// identical (images, N) always yields identical (patterns, weights,
// adjacencies), because pattern order is insertion order into a slice, not
// map iteration order.
func Learn(images []Tilemap, n int) (*LearnedModel, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: pattern size N must be >= 1, got %d", ErrInvalidInput, n)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one example image is required", ErrInvalidInput)
	}

	index := make(map[string]int)
	var patterns []Pattern
	var weights []int

	for imgIdx, img := range images {
		h := len(img)
		if h < n {
			return nil, fmt.Errorf("%w: image %d has height %d, smaller than N=%d", ErrInvalidInput, imgIdx, h, n)
		}
		w := len(img[0])
		if w < n {
			return nil, fmt.Errorf("%w: image %d has width %d, smaller than N=%d", ErrInvalidInput, imgIdx, w, n)
		}
		for _, row := range img {
			if len(row) != w {
				return nil, fmt.Errorf("%w: image %d has ragged rows", ErrInvalidInput, imgIdx)
			}
		}

		for y := 0; y <= h-n; y++ {
			for x := 0; x <= w-n; x++ {
				p := extractPattern(img, y, x, n)
				key := p.key()
				if idx, ok := index[key]; ok {
					weights[idx]++
					continue
				}
				idx := len(patterns)
				index[key] = idx
				patterns = append(patterns, p)
				weights = append(weights, 1)
			}
		}
	}

	adjacency := computeAdjacency(patterns, n)

	return &LearnedModel{
		N:         n,
		Patterns:  patterns,
		Weights:   weights,
		Adjacency: adjacency,
	}, nil
}

// computeAdjacency tests the §3 overlap rule for every ordered pair (i, j),
// including i == j, across every direction, and sets the adjacency bits
// symmetrically. The explicit i == j pass matters: a loop that only visits
// j > i never reaches the self-adjacency case.
func computeAdjacency(patterns []Pattern, n int) [][numDirections]Bitmask {
	p := len(patterns)
	adjacency := make([][numDirections]Bitmask, p)
	for i := range adjacency {
		for d := 0; d < numDirections; d++ {
			adjacency[i][d] = newBitmask(p)
		}
	}

	for i := 0; i < p; i++ {
		for d := Direction(0); d < numDirections; d++ {
			if compatible(patterns[i], patterns[i], d, n) {
				adjacency[i][d].Set(i)
			}
		}
		for j := i + 1; j < p; j++ {
			for d := Direction(0); d < numDirections; d++ {
				if compatible(patterns[i], patterns[j], d, n) {
					adjacency[i][d].Set(j)
					adjacency[j][Opposite(d)].Set(i)
				}
				if compatible(patterns[j], patterns[i], d, n) {
					adjacency[j][d].Set(i)
					adjacency[i][Opposite(d)].Set(j)
				}
			}
		}
	}
	return adjacency
}

// compatible reports whether pattern b may sit immediately at direction d
// of pattern a: the (N-1)-wide overlap of a shifted by d against b must
// match tile-by-tile. For N=1 the overlap degenerates to comparing the two
// single tiles directly.
func compatible(a, b Pattern, d Direction, n int) bool {
	if n == 1 {
		return a.Tiles[0] == b.Tiles[0]
	}
	dy, dx := Offset(d)

	// a's window and b's window, offset by (dy, dx), must agree on the
	// region where they overlap.
	for ay := 0; ay < n; ay++ {
		by := ay - dy
		if by < 0 || by >= n {
			continue
		}
		for ax := 0; ax < n; ax++ {
			bx := ax - dx
			if bx < 0 || bx >= n {
				continue
			}
			if a.At(ay, ax) != b.At(by, bx) {
				return false
			}
		}
	}
	return true
}
