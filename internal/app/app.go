//go:build ebiten

package app

import (
	"context"
	"image/color"
	"math/rand/v2"
	"time"

	"tilewave/internal/render"
	"tilewave/internal/ui"
	"tilewave/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a wfc.Model to the ebiten.Game interface, regenerating a
// tilemap on demand instead of stepping a continuously running
// simulation.
type Game struct {
	model       *wfc.Model
	w, h        int
	maxAttempts int
	scale       int
	seed        int64

	painter *render.GridPainter
	palette []color.RGBA
	hud     *ui.HUD
	overlay *ui.Overlay

	tiles   []uint8
	ok      bool
	lastErr error
}

// New constructs a Game that generates w×h tilemaps from model.
func New(model *wfc.Model, w, h, scale, maxAttempts int, seed int64) *Game {
	g := &Game{
		model:       model,
		w:           w,
		h:           h,
		maxAttempts: maxAttempts,
		scale:       scale,
		seed:        seed,
		painter:     render.NewGridPainter(w, h),
		palette:     render.HashPalette(model.Learned().P()),
		hud:         ui.NewHUD(hudWidth),
		overlay:     ui.NewOverlay(w, h, scale),
		tiles:       make([]uint8, w*h),
	}
	presets := model.Presets()
	coords := make([][2]int, len(presets))
	for i, p := range presets {
		coords[i] = [2]int{p.X, p.Y}
	}
	g.overlay.SetPresets(coords)
	g.regenerate(seed)
	return g
}

func (g *Game) regenerate(seed int64) {
	g.seed = seed
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	out, attempts, ok, err := g.model.Generate(context.Background(), g.w, g.h, g.maxAttempts, rng)
	g.ok = ok
	g.lastErr = err
	if ok {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				id := out[y][x]
				if id < 0 {
					id = 0
				}
				if id > 255 {
					id = 255
				}
				g.tiles[y*g.w+x] = uint8(id)
			}
		}
	}
	g.hud.SetStats(ui.Stats{
		Seed:         g.seed,
		Width:        g.w,
		Height:       g.h,
		Attempts:     attempts,
		MaxAttempts:  g.maxAttempts,
		Success:      ok,
		PatternCount: g.model.Learned().P(),
		N:            g.model.Learned().N,
	})
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.regenerate(g.seed)
	}
	g.overlay.Update()
	g.hud.Update(g.w * g.scale)
	return nil
}

// Draw renders the current tilemap, or leaves the screen blank if the
// last generation attempt failed to converge.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ok {
		g.painter.BlitPalette(screen, g.tiles, g.palette, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.w*g.scale, g.h*g.scale)
}

// Layout returns the logical screen size, including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w*g.scale + hudWidth, g.h * g.scale
}
