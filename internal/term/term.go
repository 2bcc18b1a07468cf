// Package term renders the animation on a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	t4 "github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

// cells are roughly twice as tall as they are wide
const cellAspect = 2.0

type Host struct {
	FPS    int
	Camera t4.Camera
	// NewScreen defaults to tcell.NewScreen; tests swap in a simulation screen.
	NewScreen func() (tcell.Screen, error)
}

func New(fps int, cam t4.Camera) *Host {
	return &Host{FPS: fps, Camera: cam, NewScreen: tcell.NewScreen}
}

func (h *Host) Run(ctx context.Context, a *t4.Animator) error {
	newScreen := h.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	s, err := newScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	// Input goroutine only forwards; all state changes happen in the loop below.
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	fps := h.FPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	t4.Logger.Info().Int("fps", fps).Msg("terminal host started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := h.handle(s, a, ev); quit {
				return nil
			}
		case <-ticker.C:
			fb := a.Step(ctx)
			h.Draw(s, a, fb)
			fb.MarkClean()
		}
	}
}

// handle applies one input event; it reports whether to quit.
func (h *Host) handle(s tcell.Screen, a *t4.Animator, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'r', 'R':
				a.SetPointer(t4.Pointer{})
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		w, hh := s.Size()
		a.SetPointer(t4.NormalizePointer(t4.Real(x), t4.Real(y), t4.Real(w), t4.Real(hh)))
	case *tcell.EventResize:
		s.Sync()
	}
	return false
}

// Draw paints the frame's segments and a status line.
func (h *Host) Draw(s tcell.Screen, a *t4.Animator, fb *t4.FrameBuffer) {
	s.Clear()
	w, hh := s.Size()
	if w <= 2 || hh <= 2 {
		s.Show()
		return
	}
	cam := h.Camera
	cam.Aspect = t4.Real(w) / (t4.Real(hh) * cellAspect)
	line := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, seg := range t4.ScreenSegments(fb, cam, t4.Real(w), t4.Real(hh-1)) {
		t4.RasterSegment(seg, w, hh-1, func(x, y int) {
			s.SetContent(x, y, '█', nil, line)
		})
	}
	p := a.Pointer()
	info := fmt.Sprintf("%s | frame %d | pointer (%.2f, %.2f) | mouse:rotate r:reset q:quit",
		a.State().Name, a.Frames(), p.X, p.Y)
	drawText(s, 0, hh-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
