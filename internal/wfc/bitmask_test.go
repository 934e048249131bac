package wfc

import "testing"

func TestBitmaskSetTestClear(t *testing.T) {
	m := newBitmask(70)
	m.Set(0)
	m.Set(63)
	m.Set(64)
	m.Set(69)

	for _, i := range []int{0, 63, 64, 69} {
		if !m.Test(i) {
			t.Fatalf("bit %d: want set, got clear", i)
		}
	}
	if m.Test(1) {
		t.Fatalf("bit 1: want clear, got set")
	}

	m.Clear(64)
	if m.Test(64) {
		t.Fatalf("bit 64: want clear after Clear, got set")
	}
}

func TestBitmaskSetAllMasksTrailingBits(t *testing.T) {
	m := newBitmask(70)
	m.SetAll()
	if m.PopCount() != 70 {
		t.Fatalf("PopCount after SetAll: want 70, got %d", m.PopCount())
	}
	for i := 70; i < 128; i++ {
		if m.words[i/wordBits]&(1<<uint(i%wordBits)) != 0 {
			t.Fatalf("bit %d beyond n=70 was left set by SetAll", i)
		}
	}
}

func TestBitmaskIsEmpty(t *testing.T) {
	m := newBitmask(5)
	if !m.IsEmpty() {
		t.Fatalf("fresh bitmask should be empty")
	}
	m.Set(3)
	if m.IsEmpty() {
		t.Fatalf("bitmask with a set bit should not be empty")
	}
}

func TestBitmaskAndOrInto(t *testing.T) {
	a := newBitmask(8)
	a.Set(0)
	a.Set(2)
	a.Set(4)

	b := newBitmask(8)
	b.Set(2)
	b.Set(4)
	b.Set(6)

	and := a.And(b)
	for i := 0; i < 8; i++ {
		want := i == 2 || i == 4
		if and.Test(i) != want {
			t.Fatalf("And bit %d: want %v, got %v", i, want, and.Test(i))
		}
	}

	c := newBitmask(8)
	c.Set(1)
	c.OrInto(b)
	for i := 0; i < 8; i++ {
		want := i == 1 || i == 2 || i == 4 || i == 6
		if c.Test(i) != want {
			t.Fatalf("OrInto bit %d: want %v, got %v", i, want, c.Test(i))
		}
	}
}

func TestBitmaskCloneIsIndependent(t *testing.T) {
	a := newBitmask(8)
	a.Set(1)
	b := a.Clone()
	b.Set(2)
	if a.Test(2) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}

func TestBitmaskEqual(t *testing.T) {
	a := fullBitmask(10)
	b := newBitmask(10)
	b.SetAll()
	if !a.Equal(b) {
		t.Fatalf("fullBitmask(10) and a manually SetAll bitmask should be equal")
	}
	b.Clear(5)
	if a.Equal(b) {
		t.Fatalf("masks differing by one bit should not be equal")
	}
}

func TestBitmaskBitsAscending(t *testing.T) {
	m := newBitmask(200)
	for _, i := range []int{150, 2, 64, 0, 199} {
		m.Set(i)
	}
	bits := m.Bits()
	want := []int{0, 2, 64, 150, 199}
	if len(bits) != len(want) {
		t.Fatalf("Bits length: want %d, got %d", len(want), len(bits))
	}
	for i, b := range bits {
		if b != want[i] {
			t.Fatalf("Bits[%d]: want %d, got %d", i, want[i], b)
		}
	}
}
