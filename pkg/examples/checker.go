package examples

import "tilewave/internal/wfc"

func init() {
	Register("checker", checker)
}

// checker draws a regular two-tile checkerboard. The seed is unused
// since the pattern is fully determined by position, but the signature
// stays uniform with the other registered factories.
func checker(w, h int, seed int64) wfc.Tilemap {
	img := make(wfc.Tilemap, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = (x + y) % 2
		}
		img[y] = row
	}
	return img
}
