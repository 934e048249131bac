//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter blits a flat tile buffer to screen, scaled up by whole
// pixels per cell. It owns one offscreen image sized to the logical grid
// and reuses it across frames instead of allocating per draw call.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter constructs a painter for a w×h logical grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Size returns the logical grid dimensions.
func (p *GridPainter) Size() (int, int) { return p.w, p.h }

// BlitPalette renders cell values through a palette, scaled onto dst.
func (p *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	fillPaletteRGBA(p.buf, cells, palette)
	p.img.ReplacePixels(p.buf)
	p.draw(dst, scale)
}

func (p *GridPainter) draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
