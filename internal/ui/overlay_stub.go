//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(w, h, scale int) *Overlay { return &Overlay{} }

// SetPresets is a no-op in the headless build.
func (o *Overlay) SetPresets(coords [][2]int) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
