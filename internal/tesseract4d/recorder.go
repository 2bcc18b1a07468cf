package tesseract4d

import (
	"context"
	"math"
)

// FrameSink receives every frame a Recorder produces.
type FrameSink interface {
	// Begin is called once with the planned frame count and segment count.
	Begin(frames, segments int) error
	WriteFrame(n int, fb *FrameBuffer) error
	Close() error
}

// Recorder is a headless host: it steps the animation a fixed number of
// times with a scripted pointer and hands each frame to Sink.
type Recorder struct {
	Frames  int
	Pointer Pointer
	Sweep   bool // move the pointer once around a circle of radius |Pointer|
	Sink    FrameSink
}

func (r *Recorder) pointerAt(i int) Pointer {
	if !r.Sweep || r.Frames <= 0 {
		return r.Pointer
	}
	rad := math.Hypot(r.Pointer.X, r.Pointer.Y)
	if rad == 0 {
		rad = 1
	}
	phi := math.Atan2(r.Pointer.Y, r.Pointer.X) + 2*math.Pi*Real(i)/Real(r.Frames)
	return Pointer{X: rad * math.Cos(phi), Y: rad * math.Sin(phi)}
}

// Run records r.Frames frames, stopping early if ctx is cancelled. The sink
// is always closed.
func (r *Recorder) Run(ctx context.Context, a *Animator) (err error) {
	if err := r.Sink.Begin(r.Frames, a.Frame().Len()); err != nil {
		return err
	}
	defer func() {
		if cerr := r.Sink.Close(); err == nil {
			err = cerr
		}
	}()
	step := max(1, r.Frames/100)
	for i := 0; i < r.Frames; i++ {
		select {
		case <-ctx.Done():
			Logger.Warn().Int("frame", i).Msg("recording cancelled")
			return ctx.Err()
		default:
		}
		a.SetPointer(r.pointerAt(i))
		fb := a.Step(ctx)
		if err := r.Sink.WriteFrame(i, fb); err != nil {
			return err
		}
		fb.MarkClean()
		if i%step == 0 {
			Logger.Debug().Msgf("[REC] %.2f%%", Real(i+1)*100/Real(r.Frames))
		}
	}
	Logger.Info().Int("frames", r.Frames).Str("polytope", a.State().Name).Msg("recording finished")
	return nil
}
