package wfc

import (
	"context"
	"testing"
)

func TestModelSetPresetReplacesExisting(t *testing.T) {
	m, err := NewModel([]Tilemap{checkerboard(4, 4)}, 1)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	maskA := newBitmask(m.learned.P())
	maskA.Set(0)
	maskB := fullBitmask(m.learned.P())

	m.SetPreset(1, 1, maskA)
	m.SetPreset(1, 1, maskB)

	if len(m.presets) != 1 {
		t.Fatalf("setting the same cell twice should not add a second preset, got %d", len(m.presets))
	}
	if !m.presets[0].Mask.Equal(maskB) {
		t.Fatalf("second SetPreset call should replace the first")
	}
}

func TestModelClearPresets(t *testing.T) {
	m, err := NewModel([]Tilemap{checkerboard(4, 4)}, 1)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m.SetPreset(0, 0, fullBitmask(m.learned.P()))
	m.ClearPresets()
	if len(m.presets) != 0 {
		t.Fatalf("ClearPresets should empty the preset list")
	}
}

func TestModelPresetTileRejectsOutOfRangeIndex(t *testing.T) {
	m, err := NewModel([]Tilemap{checkerboard(4, 4)}, 1)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := m.PresetTile(0, 0, m.learned.P()); err == nil {
		t.Fatalf("out-of-range pattern index should be rejected")
	}
}

func TestModelGenerateProducesRequestedSize(t *testing.T) {
	m, err := NewModel([]Tilemap{checkerboard(6, 6)}, 2)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	out, _, ok, err := m.Generate(context.Background(), 6, 6, 50, newRNG(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !ok {
		t.Fatalf("Generate should succeed on a checkerboard source")
	}
	if len(out) != 6 || len(out[0]) != 6 {
		t.Fatalf("output size: want 6x6, got %dx%d", len(out), len(out[0]))
	}
}
