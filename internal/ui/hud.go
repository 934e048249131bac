//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the read-only snapshot the HUD renders. There is nothing to
// adjust live in this domain — width, height and maxAttempts are
// generate() arguments, not running state — so unlike the teacher's HUD
// this one carries no +/- controls.
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

// HUD renders a status panel to the right of the generated tilemap.
type HUD struct {
	width int
	panel *ebiten.Image
	last  int
	stats Stats
}

// NewHUD constructs a HUD with the given panel width in pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// SetStats updates the snapshot the HUD renders.
func (h *HUD) SetStats(s Stats) {
	if h == nil {
		return
	}
	h.stats = s
}

// Update exists to keep parity with Overlay's per-frame hook; the HUD has
// no per-frame input handling since it displays read-only state.
func (h *HUD) Update(panelOffsetX int) {}

// Draw paints the HUD panel anchored to the right edge of the tilemap.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.last != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.last = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	lines := []string{
		"tilewave",
		fmt.Sprintf("seed:     %d", h.stats.Seed),
		fmt.Sprintf("size:     %dx%d", h.stats.Width, h.stats.Height),
		fmt.Sprintf("N:        %d", h.stats.N),
		fmt.Sprintf("patterns: %d", h.stats.PatternCount),
		fmt.Sprintf("attempt:  %d/%d", h.stats.Attempts, h.stats.MaxAttempts),
		fmt.Sprintf("result:   %s", resultLabel(h.stats.Success)),
	}
	for i, line := range lines {
		y := 18 + i*18
		text.Draw(h.panel, line, face, 10, y, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func resultLabel(ok bool) string {
	if ok {
		return "solved"
	}
	return "pending"
}
