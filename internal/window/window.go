// Package window renders the animation in a desktop window with ebiten.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	t4 "github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

type Host struct {
	Width, Height int
	Camera        t4.Camera
	Title         string
	// TPS of 0 follows the display refresh rate.
	TPS int
}

func New(width, height int, cam t4.Camera) *Host {
	return &Host{Width: width, Height: height, Camera: cam, Title: "tesseract4d"}
}

// Run blocks until the window closes, Esc is pressed or ctx is cancelled.
func (h *Host) Run(ctx context.Context, a *t4.Animator) error {
	g := &game{ctx: ctx, a: a, cam: h.Camera, w: h.Width, h: h.Height, line: color.White}
	ebiten.SetWindowTitle(h.Title)
	ebiten.SetWindowSize(h.Width, h.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if h.TPS > 0 {
		ebiten.SetTPS(h.TPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	t4.Logger.Info().Int("width", h.Width).Int("height", h.Height).Msg("window host started")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	ctx  context.Context
	a    *t4.Animator
	cam  t4.Camera
	w, h int
	line color.Color
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	cx, cy := ebiten.CursorPosition()
	g.a.SetPointer(PointerAt(cx, cy, g.w, g.h))
	g.a.Step(g.ctx)
	return nil
}

// PointerAt normalizes a cursor position against the logical screen.
func PointerAt(cx, cy, w, h int) t4.Pointer {
	return t4.NormalizePointer(t4.Real(cx), t4.Real(cy), t4.Real(w), t4.Real(h))
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	fb := g.a.Frame()
	for _, s := range t4.ScreenSegments(fb, g.cam, t4.Real(g.w), t4.Real(g.h)) {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1, g.line, true)
	}
	fb.MarkClean()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.w, g.h = outsideWidth, outsideHeight
	}
	return g.w, g.h
}
