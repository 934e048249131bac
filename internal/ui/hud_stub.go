//go:build !ebiten

package ui

// Stats mirrors the ebiten build's field set so callers can populate it
// identically regardless of build tag.
type Stats struct {
	Seed         int64
	Width        int
	Height       int
	Attempts     int
	MaxAttempts  int
	Success      bool
	PatternCount int
	N            int
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetStats is a no-op in the headless build.
func (h *HUD) SetStats(Stats) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
