package wfc

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Model is the façade over a learned pattern table and a pending preset
// list. Callers obtain one via NewModel, optionally pin cells with
// SetPreset/PresetTile, then call Generate as many times as they like;
// Generate never mutates the model's presets.
type Model struct {
	learned *LearnedModel
	presets []Preset
}

// NewModel learns a model from images at pattern size n and wraps it with
// an empty preset list. See Learn for the error conditions.
func NewModel(images []Tilemap, n int) (*Model, error) {
	learned, err := Learn(images, n)
	if err != nil {
		return nil, err
	}
	return &Model{learned: learned}, nil
}

// NewModelFrom wraps an already-learned model, e.g. one produced by
// DecodeModel.
func NewModelFrom(learned *LearnedModel) *Model {
	return &Model{learned: learned}
}

// Learned exposes the underlying pattern table, e.g. for encoding.
func (m *Model) Learned() *LearnedModel { return m.learned }

// SetPreset fixes the possibility mask of cell (x, y) for every subsequent
// Generate call until ClearPresets is called. Setting the same (x, y)
// again replaces the earlier preset rather than adding a second one.
func (m *Model) SetPreset(x, y int, mask Bitmask) {
	for i, p := range m.presets {
		if p.X == x && p.Y == y {
			m.presets[i].Mask = mask
			return
		}
	}
	m.presets = append(m.presets, Preset{X: x, Y: y, Mask: mask})
}

// PresetTile is sugar over SetPreset that pins (x, y) to a single learned
// pattern by its index into Learned().Patterns.
func (m *Model) PresetTile(x, y, patternIdx int) error {
	if patternIdx < 0 || patternIdx >= m.learned.P() {
		return fmt.Errorf("%w: pattern index %d out of range [0,%d)", ErrInvalidInput, patternIdx, m.learned.P())
	}
	mask := newBitmask(m.learned.P())
	mask.Set(patternIdx)
	m.SetPreset(x, y, mask)
	return nil
}

// ClearPresets removes every preset set so far.
func (m *Model) ClearPresets() {
	m.presets = nil
}

// Presets returns the pending preset list, e.g. for a viewer that wants to
// highlight pinned cells. The slice is shared with the model; callers must
// not mutate it.
func (m *Model) Presets() []Preset {
	return m.presets
}

// Generate runs Solve against the model's learned patterns and current
// presets. Solve checks ctx for cancellation before every observation,
// and so at every retry boundary, but never mid-propagation. The returned
// int is the number of attempts Solve consumed.
func (m *Model) Generate(ctx context.Context, w, h, maxAttempts int, rng *rand.Rand) (Tilemap, int, bool, error) {
	return Solve(ctx, m.learned, m.presets, w, h, maxAttempts, rng)
}
