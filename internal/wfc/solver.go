package wfc

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
)

// entropy returns the Shannon entropy of the pattern distribution implied
// by weights over the indices still possible in mask, using the closed
// form ln(Σw) − Σw·ln(w)/Σw (equivalent to −Σ pᵢ·ln pᵢ with pᵢ=wᵢ/Σw,
// expanded to save a multiplication per term). An empty mask is a
// diagnostic error: entropy should never be asked about a contradictory
// cell because the solver retries before that can happen.
func entropy(weights []int, mask Bitmask) (float64, error) {
	bits := mask.Bits()
	switch len(bits) {
	case 0:
		return 0, errContradiction
	case 1:
		return 0, nil
	}
	var sumW, sumWLogW float64
	for _, idx := range bits {
		w := float64(weights[idx])
		sumW += w
		sumWLogW += w * math.Log(w)
	}
	return math.Log(sumW) - sumWLogW/sumW, nil
}

// selectLeastEntropyCell scans every cell, ignoring collapsed ones
// (entropy exactly 0), and returns a position chosen uniformly at random
// among those tied for the strictly-positive minimum entropy. The tie
// comparison is exact floating-point equality, matching historical
// behavior (spec Open Question (b)). ok is false with a nil error when
// every cell is collapsed (the wave is solved).
func selectLeastEntropyCell(wave *waveMatrix, weights []int, rng *rand.Rand) (cellCoord, bool, error) {
	minEntropy := math.Inf(1)
	var candidates []cellCoord

	for y := 0; y < wave.H; y++ {
		for x := 0; x < wave.W; x++ {
			mask := wave.at(x, y)
			pc := mask.PopCount()
			if pc == 0 {
				return cellCoord{}, false, errContradiction
			}
			if pc == 1 {
				continue
			}
			e, err := entropy(weights, mask)
			if err != nil {
				return cellCoord{}, false, err
			}
			switch {
			case e < minEntropy:
				minEntropy = e
				candidates = candidates[:0]
				candidates = append(candidates, cellCoord{X: x, Y: y})
			case e == minEntropy:
				candidates = append(candidates, cellCoord{X: x, Y: y})
			}
		}
	}

	if len(candidates) == 0 {
		return cellCoord{}, false, nil
	}
	return candidates[rng.IntN(len(candidates))], true, nil
}

// observe performs the weighted-random collapse of the cell at (x, y):
// draw r uniformly in [0, T) where T is the summed weight of the cell's
// still-possible patterns, then walk those patterns in ascending index
// order accumulating weight until the running sum reaches r.
func observe(wave *waveMatrix, weights []int, x, y int, rng *rand.Rand) error {
	mask := wave.at(x, y)
	bits := mask.Bits()
	if len(bits) == 0 {
		return errContradiction
	}

	total := 0.0
	for _, idx := range bits {
		total += float64(weights[idx])
	}

	r := rng.Float64() * total
	chosen := bits[len(bits)-1]
	running := 0.0
	for _, idx := range bits {
		running += float64(weights[idx])
		if running >= r {
			chosen = idx
			break
		}
	}

	mask.ClearAll()
	mask.Set(chosen)
	return nil
}

// propagate runs arc consistency to a fixed point starting from starts.
// For each dequeued cell it visits the neighbor at each direction k and
// restricts it to the union of Adjacency[p][k] over the cell's remaining
// patterns p. The learner defines Adjacency[p][k] as "what may sit at
// direction k of p", so the neighbor ahead along k is the one constrained,
// with no negation of the offset; this keeps generate() from producing a
// mirrored tilemap relative to what was learned.
func propagate(wave *waveMatrix, adjacency [][numDirections]Bitmask, starts []cellCoord) error {
	q := newCellQueue()
	for _, c := range starts {
		q.enqueue(c)
	}

	for {
		c, ok := q.dequeue()
		if !ok {
			return nil
		}

		cell := wave.at(c.X, c.Y)
		bits := cell.Bits()
		if len(bits) == 0 {
			return errContradiction
		}

		for k := Direction(0); k < numDirections; k++ {
			dy, dx := Offset(k)
			nx, ny := c.X+dx, c.Y+dy
			if !wave.inBounds(nx, ny) {
				continue
			}

			neighbor := wave.at(nx, ny)
			oldCount := neighbor.PopCount()
			if oldCount == 0 {
				return errContradiction
			}

			allowed := newBitmask(wave.P)
			for _, p := range bits {
				allowed.OrInto(adjacency[p][k])
			}

			shrunk := neighbor.And(allowed)
			if shrunk.IsEmpty() {
				return errContradiction
			}
			if shrunk.PopCount() != oldCount {
				neighbor.ClearAll()
				neighbor.OrInto(shrunk)
				q.enqueue(cellCoord{X: nx, Y: ny})
			}
		}
	}
}

// Solve runs the observe/propagate/retry loop described in spec.md §4.6
// and returns the collapsed tilemap along with the number of attempts
// consumed (1 if the first attempt succeeds). ok is false with a nil
// error when maxAttempts was exhausted without success — a normal
// outcome, not an error. A non-nil error is ErrInvalidInput,
// ErrUnsatisfiable, or ctx.Err() when ctx is canceled before an
// observation.
func Solve(ctx context.Context, model *LearnedModel, presets []Preset, w, h, maxAttempts int, rng *rand.Rand) (Tilemap, int, bool, error) {
	if model == nil || model.P() == 0 {
		return nil, 0, false, fmt.Errorf("%w: model has no learned patterns", ErrInvalidInput)
	}
	if len(model.Adjacency) != model.P() {
		return nil, 0, false, fmt.Errorf("%w: adjacency length %d does not match pattern count %d", ErrInvalidInput, len(model.Adjacency), model.P())
	}
	if w < 1 || h < 1 {
		return nil, 0, false, fmt.Errorf("%w: output dimensions must be positive, got %dx%d", ErrInvalidInput, w, h)
	}
	if maxAttempts < 1 {
		return nil, 0, false, fmt.Errorf("%w: maxAttempts must be >= 1, got %d", ErrInvalidInput, maxAttempts)
	}

	wave := newWaveMatrix(model.P(), w, h)

	resetWave := func() ([]cellCoord, error) {
		wave.initialize()
		if err := wave.applyPresets(presets); err != nil {
			return nil, err
		}
		coords := make([]cellCoord, len(presets))
		for i, p := range presets {
			coords[i] = cellCoord{X: p.X, Y: p.Y}
		}
		return coords, nil
	}

	presetCoords, err := resetWave()
	if err != nil {
		return nil, 0, false, err
	}
	if err := propagate(wave, model.Adjacency, presetCoords); err != nil {
		return nil, 0, false, fmt.Errorf("%w: presets leave no consistent assignment", ErrUnsatisfiable)
	}

	pickRandomCell := func() cellCoord {
		return cellCoord{X: rng.IntN(w), Y: rng.IntN(h)}
	}

	var current cellCoord
	if len(presets) == 0 {
		// The wave is uniform: every cell has equal entropy, so the usual
		// entropy scan would pick arbitrarily among all of them anyway.
		current = pickRandomCell()
	} else {
		next, ok, serr := selectLeastEntropyCell(wave, model.Weights, rng)
		if serr != nil {
			return nil, 0, false, fmt.Errorf("%w: presets leave no consistent assignment", ErrUnsatisfiable)
		}
		if !ok {
			return extractTilemap(wave, model), 1, true, nil
		}
		current = next
	}

	for attempts := 1; attempts <= maxAttempts; {
		if err := ctx.Err(); err != nil {
			return nil, attempts, false, err
		}

		obsErr := observe(wave, model.Weights, current.X, current.Y, rng)
		var propErr error
		if obsErr == nil {
			propErr = propagate(wave, model.Adjacency, []cellCoord{current})
		}

		if obsErr != nil || propErr != nil {
			presetCoords, rerr := resetWave()
			if rerr != nil {
				return nil, attempts, false, rerr
			}
			if err := propagate(wave, model.Adjacency, presetCoords); err != nil {
				return nil, attempts, false, fmt.Errorf("%w: presets leave no consistent assignment", ErrUnsatisfiable)
			}
			current = pickRandomCell()
			attempts++
			continue
		}

		next, ok, serr := selectLeastEntropyCell(wave, model.Weights, rng)
		if serr != nil {
			presetCoords, rerr := resetWave()
			if rerr != nil {
				return nil, attempts, false, rerr
			}
			if err := propagate(wave, model.Adjacency, presetCoords); err != nil {
				return nil, attempts, false, fmt.Errorf("%w: presets leave no consistent assignment", ErrUnsatisfiable)
			}
			current = pickRandomCell()
			attempts++
			continue
		}
		if !ok {
			return extractTilemap(wave, model), attempts, true, nil
		}
		current = next
	}

	return nil, maxAttempts, false, nil
}

// extractTilemap reads the sole surviving pattern of every collapsed cell
// and returns its top-left tile as the output tile id, per spec.md §4.6.5.
func extractTilemap(wave *waveMatrix, model *LearnedModel) Tilemap {
	out := make(Tilemap, wave.H)
	for y := 0; y < wave.H; y++ {
		row := make([]int, wave.W)
		for x := 0; x < wave.W; x++ {
			bits := wave.at(x, y).Bits()
			row[x] = model.Patterns[bits[0]].At(0, 0)
		}
		out[y] = row
	}
	return out
}
