package ca

// Elementary runs a one-dimensional Wolfram rule, scrolling each new row
// into a 2D history buffer so the result can be used as a Tilemap.
type Elementary struct {
	w, h int
	rule uint8
	rows [][]uint8
	cur  []uint8

	filled int // history rows written so far
}

// NewElementary constructs an Elementary automaton of the given width,
// history height, and Wolfram rule number (0-255).
func NewElementary(w, h int, rule uint8) *Elementary {
	rows := make([][]uint8, h)
	for i := range rows {
		rows[i] = make([]uint8, w)
	}
	return &Elementary{w: w, h: h, rule: rule, rows: rows, cur: make([]uint8, w)}
}

// Reset seeds a single live cell at the center of row 0 and clears the
// rest of the history.
func (e *Elementary) Reset(seed int64) {
	for _, row := range e.rows {
		for i := range row {
			row[i] = 0
		}
	}
	e.rows[0][e.w/2] = 1
	copy(e.cur, e.rows[0])
	e.filled = 1
}

// Size returns the grid dimensions.
func (e *Elementary) Size() (int, int) { return e.w, e.h }

// Cells returns the full history buffer flattened row-major.
func (e *Elementary) Cells() []uint8 {
	flat := make([]uint8, e.w*e.h)
	for y, row := range e.rows {
		copy(flat[y*e.w:(y+1)*e.w], row)
	}
	return flat
}

func (e *Elementary) at(row []uint8, x int) uint8 {
	if x < 0 || x >= e.w {
		return 0
	}
	return row[x]
}

// Step computes one new row from the rule applied to the most recent row.
// Until the history is full the new row is written below the previous
// one; after that the buffer scrolls up by one row, discarding the oldest.
func (e *Elementary) Step() {
	prev := e.cur
	next := make([]uint8, e.w)
	for x := 0; x < e.w; x++ {
		l := e.at(prev, x-1)
		c := e.at(prev, x)
		r := e.at(prev, x+1)
		pattern := l<<2 | c<<1 | r
		next[x] = (e.rule >> pattern) & 1
	}
	if e.filled < e.h {
		e.rows[e.filled] = next
		e.filled++
	} else {
		for i := 1; i < e.h; i++ {
			e.rows[i-1] = e.rows[i]
		}
		e.rows[e.h-1] = next
	}
	copy(e.cur, next)
}
