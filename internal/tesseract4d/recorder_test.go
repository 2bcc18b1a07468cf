package tesseract4d

import (
	"bufio"
	"context"
	"errors"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	begun, closed bool
	frames, segs  int
	written       []int
	failAt        int
	onWrite       func(n int)
}

func (s *fakeSink) Begin(frames, segments int) error {
	s.begun, s.frames, s.segs = true, frames, segments
	return nil
}

func (s *fakeSink) WriteFrame(n int, _ *FrameBuffer) error {
	if s.failAt > 0 && n == s.failAt {
		return errors.New("disk full")
	}
	s.written = append(s.written, n)
	if s.onWrite != nil {
		s.onWrite(n)
	}
	return nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func TestRecorder_PointerAt(t *testing.T) {
	r := &Recorder{Frames: 4, Pointer: Pointer{X: 1}}
	assert.Equal(t, Pointer{X: 1}, r.pointerAt(3))

	r.Sweep = true
	p := r.pointerAt(1)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	p = r.pointerAt(2)
	assert.InDelta(t, -1, p.X, 1e-12)

	r.Pointer = Pointer{}
	p = r.pointerAt(0)
	assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-12, "zero pointer sweeps the unit circle")
}

func TestRecorder_Run(t *testing.T) {
	a := newTestAnimator(t, Tesseract)
	sink := &fakeSink{}
	r := &Recorder{Frames: 5, Pointer: Pointer{X: 0.25, Y: 0.1}, Sink: sink}
	require.NoError(t, r.Run(context.Background(), a))

	assert.True(t, sink.begun)
	assert.True(t, sink.closed)
	assert.Equal(t, 5, sink.frames)
	assert.Equal(t, 32, sink.segs)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sink.written)
	assert.Equal(t, int64(5), a.Frames())
	assert.False(t, a.Frame().Dirty)
	assert.Equal(t, Pointer{X: 0.25, Y: 0.1}, a.Pointer())
}

func TestRecorder_SinkError(t *testing.T) {
	a := newTestAnimator(t, Tesseract)
	sink := &fakeSink{failAt: 2}
	err := (&Recorder{Frames: 5, Sink: sink}).Run(context.Background(), a)
	require.EqualError(t, err, "disk full")
	assert.True(t, sink.closed)
	assert.Equal(t, []int{0, 1}, sink.written)
}

func TestRecorder_Cancelled(t *testing.T) {
	a := newTestAnimator(t, Tesseract)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &fakeSink{onWrite: func(n int) {
		if n == 1 {
			cancel()
		}
	}}
	err := (&Recorder{Frames: 10, Sink: sink}).Run(ctx, a)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, sink.closed)
	assert.Equal(t, []int{0, 1}, sink.written)
}

func TestGIFSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	a := newTestAnimator(t, Tesseract)
	sink := &GIFSink{Path: path, Width: 64, Height: 48, Delay: 3, Camera: DefaultCamera()}
	require.NoError(t, (&Recorder{Frames: 4, Pointer: Pointer{X: 0.5}, Sink: sink}).Run(context.Background(), a))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
	assert.Equal(t, []int{3, 3, 3, 3}, g.Delay)
	assert.Equal(t, 64, g.Image[0].Bounds().Dx())
	assert.Equal(t, 48, g.Image[0].Bounds().Dy())
}

func TestGIFSink_CloseError(t *testing.T) {
	a := newTestAnimator(t, Tesseract)
	sink := &GIFSink{Path: filepath.Join(t.TempDir(), "missing", "out.gif"), Width: 8, Height: 8, Camera: DefaultCamera()}
	err := (&Recorder{Frames: 2, Sink: sink}).Run(context.Background(), a)
	assert.Error(t, err, "write failures surface from Close")
}

func TestPNGSink(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "frame")
	a := newTestAnimator(t, Pentachoron)
	sink := &PNGSink{Prefix: prefix, Width: 32, Height: 32, Camera: DefaultCamera()}
	require.NoError(t, (&Recorder{Frames: 12, Sink: sink}).Run(context.Background(), a))

	assert.Equal(t, prefix+"_00.png", sink.FrameName(0))
	for i := 0; i < 12; i++ {
		assert.FileExists(t, sink.FrameName(i))
	}
	f, err := os.Open(sink.FrameName(11))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestRawSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "frames.raw")
	a := newTestAnimator(t, Tesseract)
	require.NoError(t, (&Recorder{Frames: 5, Pointer: Pointer{X: 0.1}, Sink: &RawSink{Path: path}}).Run(context.Background(), a))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8+5*192*4), st.Size())

	frames, err := LoadRawFrames(path)
	require.NoError(t, err)
	require.Len(t, frames, 5)
	for _, fr := range frames {
		assert.Len(t, fr, 192)
	}
	assert.Equal(t, a.Frame().Positions, frames[4])
}

func TestRawSink_ShortRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.raw")
	a := newTestAnimator(t, Tesseract)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (&Recorder{Frames: 5, Sink: &RawSink{Path: path}}).Run(ctx, a)
	require.ErrorIs(t, err, context.Canceled)

	frames, err := LoadRawFrames(path)
	require.NoError(t, err)
	assert.Empty(t, frames, "header is rewritten to the frames actually written")
}

func TestWKTSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.wkt")
	a := newTestAnimator(t, Orthoplex)
	require.NoError(t, (&Recorder{Frames: 3, Sink: &WKTSink{Path: path}}).Run(context.Background(), a))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lines := 0
	for sc.Scan() {
		line := sc.Text()
		assert.True(t, strings.HasPrefix(line, "MULTILINESTRING Z"), line[:20])
		g, err := geom.UnmarshalWKT(line, geom.DisableAllValidations)
		require.NoError(t, err)
		mls, ok := g.AsMultiLineString()
		require.True(t, ok)
		assert.Equal(t, 24, mls.NumLineStrings())
		assert.Equal(t, geom.DimXYZ, mls.CoordinatesType())
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 3, lines)
}

func TestFrameGeometry(t *testing.T) {
	s := newTesseractState(t)
	mls, err := FrameGeometry(s.Frame)
	require.NoError(t, err)
	require.Equal(t, 32, mls.NumLineStrings())
	assert.Equal(t, geom.DimXYZ, mls.CoordinatesType())

	a, b := s.Frame.Segment(0)
	seq := mls.LineStringN(0).Coordinates()
	require.Equal(t, 2, seq.Length())
	assert.Equal(t, a, Point3{seq.Get(0).X, seq.Get(0).Y, seq.Get(0).Z})
	assert.Equal(t, b, Point3{seq.Get(1).X, seq.Get(1).Y, seq.Get(1).Z})

	// edge (0,4) runs along z and is seen end-on: both ends share XY
	require.Equal(t, Edge{0, 4}, s.Edges[2])
	endOn := mls.LineStringN(2).Coordinates()
	require.Equal(t, 2, endOn.Length())
	assert.Equal(t, endOn.GetXY(0), endOn.GetXY(1))
	assert.InDelta(t, -2, endOn.Get(0).Z, 0)
	assert.InDelta(t, 2, endOn.Get(1).Z, 0)
	assert.True(t, strings.HasPrefix(mls.AsText(), "MULTILINESTRING Z"))
}

func TestFrameGeometry_Degenerate(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	fb := &FrameBuffer{Positions: []float32{inf, -inf, nan, 1, 2, 3}}
	mls, err := FrameGeometry(fb)
	require.NoError(t, err)
	require.Equal(t, 1, mls.NumLineStrings())
	assert.True(t, math.IsInf(mls.LineStringN(0).Coordinates().Get(0).X, 1))
}
