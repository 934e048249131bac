//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the generated
// tilemap. Currently it can highlight the cells the model's presets
// pinned, toggled with the 1 key, matching the teacher's number-key
// toggle convention.
type Overlay struct {
	w, h, scale int
	showPresets bool
	presets     map[[2]int]bool
	pixel       *ebiten.Image
}

// NewOverlay constructs an overlay for a w×h logical grid drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{w: w, h: h, scale: scale, presets: map[[2]int]bool{}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPresets replaces the set of cells considered preset-pinned.
func (o *Overlay) SetPresets(coords [][2]int) {
	o.presets = make(map[[2]int]bool, len(coords))
	for _, c := range coords {
		o.presets[c] = true
	}
}

// Update toggles the preset highlight on the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPresets = !o.showPresets
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showPresets || o.pixel == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	tint := color.RGBA{R: 255, G: 210, B: 60, A: 140}
	for c := range o.presets {
		x, y := c[0], c[1]
		if x < 0 || x >= o.w || y < 0 || y >= o.h {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		op.GeoM.Translate(float64(x*scale), float64(y*scale))
		op.ColorM.Scale(float64(tint.R)/255.0, float64(tint.G)/255.0, float64(tint.B)/255.0, float64(tint.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}
