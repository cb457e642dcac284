// Package viewer shows an approximation in a desktop window and lets the
// user change the function and the rectangle count from the keyboard.
//
//	left/right   one rectangle less/more (shift: ten)
//	up/down      previous/next function
//	1..9         select function by position
//	escape       quit
package viewer

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hammal/riemann"
	"github.com/hammal/riemann/catalog"
	"github.com/hammal/riemann/input"
	"github.com/hammal/riemann/render"
	log "github.com/sirupsen/logrus"
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	// Initial selection, zero values select the defaults
	Label      string
	Rectangles int
	Theme      render.Theme
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

type game struct {
	catalog *catalog.Catalog
	sel     input.Selection
	opts    Options
	frame   *ebiten.Image
	dirty   bool
}

// Run opens the window and blocks until it is closed.
func Run(c *catalog.Catalog, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("viewer: invalid window size %dx%d", opts.Width, opts.Height)
	}
	g := &game{catalog: c, sel: input.New(), opts: opts, dirty: true}
	if opts.Label != "" {
		if _, err := g.sel.SelectLabel(c, opts.Label); err != nil {
			return err
		}
	}
	if opts.Rectangles != 0 {
		g.sel.SetN(opts.Rectangles)
	}

	ebiten.SetWindowTitle("Riemann Sum")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// handleKeys applies the key presses of this tick to the selection.
func (g *game) handleKeys() bool {
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step = 10
	}
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		changed = g.sel.StepN(step) || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		changed = g.sel.StepN(-step) || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		changed = g.sel.Cycle(g.catalog, 1) || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		changed = g.sel.Cycle(g.catalog, -1) || changed
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			changed = g.sel.Select(g.catalog, i) || changed
		}
	}
	return changed
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.handleKeys() {
		g.dirty = true
	}
	if !g.dirty {
		return nil
	}
	g.dirty = false
	return g.redraw()
}

// redraw recomputes the approximation for the current selection and
// renders it into the frame image.
func (g *game) redraw() error {
	entry, n := g.sel.Request(g.catalog)
	res, err := riemann.Approximate(entry.F, n)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"function":    entry.Label,
		"n":           n,
		"approximate": res.Approximate,
		"reference":   res.Reference,
	}).Debug("redraw")

	p, err := render.Plot(res, entry.Label, g.opts.Theme)
	if err != nil {
		return err
	}
	img := render.Image(p, g.opts.Width, g.opts.Height)
	if g.frame != nil {
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImageFromImage(img)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
