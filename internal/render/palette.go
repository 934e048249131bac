package render

import (
	"image/color"
	"math"
)

// HashPalette builds n deterministic, visually distinct colors by walking
// evenly around the hue wheel. It has no knowledge of what a tile id
// means — every Tilemap renderer in this module resolves to small
// integer ids, so an index-based palette is the only rendering the core
// package itself can assume.
func HashPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hsvToRGB(hue, 0.55, 0.95)
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
