package wfc

import (
	"strconv"
	"strings"
)

// Pattern is an N×N matrix of tile ids, stored row-major. Two patterns are
// equal iff every corresponding tile id matches.
type Pattern struct {
	N     int
	Tiles []int // length N*N, row-major
}

// At returns the tile id at local row y, column x within the pattern.
func (p Pattern) At(y, x int) int { return p.Tiles[y*p.N+x] }

// key returns a canonical serialization suitable for use as a map key,
// used by the learner to deduplicate patterns during extraction.
func (p Pattern) key() string {
	var b strings.Builder
	b.Grow(len(p.Tiles) * 5)
	for i, t := range p.Tiles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// extractPattern copies the N×N window of img anchored at (y0, x0) into a
// new Pattern. img must already be validated as rectangular and large
// enough to hold the window.
func extractPattern(img [][]int, y0, x0, n int) Pattern {
	tiles := make([]int, n*n)
	for y := 0; y < n; y++ {
		row := img[y0+y]
		copy(tiles[y*n:y*n+n], row[x0:x0+n])
	}
	return Pattern{N: n, Tiles: tiles}
}

// Tilemap is an H×W matrix of tile ids, as produced by Solve/Model.Generate
// and consumed as learning input by Learn.
type Tilemap [][]int

// Preset fixes or restricts a single cell's possibility mask before the
// first observation of every solver attempt. Mask is typically a
// singleton (see Model.PresetTile) but any non-empty subset is accepted.
type Preset struct {
	X, Y int
	Mask Bitmask
}
