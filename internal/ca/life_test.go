package ca

import "testing"

// TestLifeBlinkerOscillates checks the classic three-cell blinker returns
// to its starting orientation after two steps.
func TestLifeBlinkerOscillates(t *testing.T) {
	l := NewLife(5, 5)
	l.Reset(0)
	cells := l.Cells()
	for i := range cells {
		cells[i] = 0
	}
	// Horizontal blinker centered at (2,2).
	cells[2*5+1] = 1
	cells[2*5+2] = 1
	cells[2*5+3] = 1

	l.Step()
	vertical := l.Cells()
	if vertical[1*5+2] == 0 || vertical[2*5+2] == 0 || vertical[3*5+2] == 0 {
		t.Fatalf("blinker should be vertical after one step: %v", vertical)
	}

	l.Step()
	horizontal := l.Cells()
	if horizontal[2*5+1] == 0 || horizontal[2*5+2] == 0 || horizontal[2*5+3] == 0 {
		t.Fatalf("blinker should be horizontal again after two steps: %v", horizontal)
	}
}

func TestLifeResetIsDeterministic(t *testing.T) {
	a := NewLife(8, 8)
	a.Reset(42)
	b := NewLife(8, 8)
	b.Reset(42)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("identical seeds should reset to identical grids")
		}
	}
}
