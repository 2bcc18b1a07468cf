package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	t4 "github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

func newAnimator(t *testing.T) *t4.Animator {
	t.Helper()
	w, err := t4.NewWireframe(t4.Tesseract, 1)
	require.NoError(t, err)
	a, err := t4.NewAnimator(t4.NewState(w, t4.DefaultSettings()))
	require.NoError(t, err)
	return a
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestDraw(t *testing.T) {
	s := newScreen(t, 80, 24)
	a := newAnimator(t)
	h := New(30, t4.DefaultCamera())
	h.Draw(s, a, a.Step(context.Background()))

	cells, w, hh := s.GetContents()
	require.Equal(t, 80, w)
	require.Equal(t, 24, hh)
	lit := 0
	for i, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '█' {
			lit++
			assert.Less(t, i/w, hh-1, "wireframe drawn over the status line")
		}
	}
	assert.Greater(t, lit, 0)

	var status strings.Builder
	for _, c := range cells[(hh-1)*w:] {
		if len(c.Runes) > 0 {
			status.WriteRune(c.Runes[0])
		}
	}
	assert.Contains(t, status.String(), "8-cell | frame 1")
}

func TestDraw_TinyScreen(t *testing.T) {
	s := newScreen(t, 2, 2)
	a := newAnimator(t)
	New(30, t4.DefaultCamera()).Draw(s, a, a.Frame())
	cells, _, _ := s.GetContents()
	for _, c := range cells {
		if len(c.Runes) > 0 {
			assert.NotEqual(t, '█', c.Runes[0])
		}
	}
}

func TestHandle(t *testing.T) {
	s := newScreen(t, 100, 50)
	a := newAnimator(t)
	h := New(30, t4.DefaultCamera())

	assert.False(t, h.handle(s, a, tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, t4.Pointer{X: 1, Y: 1}, a.Pointer())

	assert.False(t, h.handle(s, a, tcell.NewEventMouse(75, 25, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, t4.Pointer{X: -0.5, Y: 0}, a.Pointer())

	assert.False(t, h.handle(s, a, tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Equal(t, t4.Pointer{}, a.Pointer())

	assert.False(t, h.handle(s, a, tcell.NewEventResize(120, 40)))

	assert.True(t, h.handle(s, a, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, h.handle(s, a, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, h.handle(s, a, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestRun_StopsOnContext(t *testing.T) {
	a := newAnimator(t)
	h := New(100, t4.DefaultCamera())
	h.NewScreen = func() (tcell.Screen, error) { return tcell.NewSimulationScreen("UTF-8"), nil }

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	require.NoError(t, h.Run(ctx, a))
	assert.Greater(t, a.Frames(), int64(0))
}
