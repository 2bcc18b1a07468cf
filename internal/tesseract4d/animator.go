package tesseract4d

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Animator drives State.Update once per host tick. It is not safe for
// concurrent use: hosts call SetPointer and Step from their loop goroutine.
type Animator struct {
	state   *State
	pointer Pointer
	frames  int64

	framesCounter  metric.Int64Counter
	updateDuration metric.Float64Histogram
	attrs          metric.MeasurementOption
}

// NewAnimator wraps state. Uses the global OTel meter (no-op if not configured).
func NewAnimator(state *State) (*Animator, error) {
	a := &Animator{
		state: state,
		attrs: metric.WithAttributes(attribute.String("polytope", state.Name)),
	}
	m := meter()

	var err error
	a.framesCounter, err = m.Int64Counter(
		"tesseract.frames",
		metric.WithDescription("Total frames updated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}
	a.updateDuration, err = m.Float64Histogram(
		"tesseract.update.duration",
		metric.WithDescription("Time spent rotating, projecting and assembling one frame"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating update histogram: %w", err)
	}
	return a, nil
}

// SetPointer stores the pointer consumed by the next Step.
func (a *Animator) SetPointer(p Pointer) { a.pointer = p }

// Pointer returns the current pointer signal.
func (a *Animator) Pointer() Pointer { return a.pointer }

// Step runs one update and returns the rewritten frame.
func (a *Animator) Step(ctx context.Context) *FrameBuffer {
	start := time.Now()
	fb := a.state.Update(a.pointer)
	a.frames++
	a.framesCounter.Add(ctx, 1, a.attrs)
	a.updateDuration.Record(ctx, float64(time.Since(start).Microseconds())/1000, a.attrs)
	return fb
}

// Frame returns the current buffer without updating.
func (a *Animator) Frame() *FrameBuffer { return a.state.Frame }

// Frames returns the number of completed updates.
func (a *Animator) Frames() int64 { return a.frames }

// State exposes the underlying state (read-only use by hosts).
func (a *Animator) State() *State { return a.state }

// Host is a render collaborator: it owns scheduling and drawing, and feeds
// pointer input into the animator. Run returns when ctx is cancelled or the
// host finishes.
type Host interface {
	Run(ctx context.Context, a *Animator) error
}

// HostFunc adapts a function to Host.
type HostFunc func(ctx context.Context, a *Animator) error

func (f HostFunc) Run(ctx context.Context, a *Animator) error { return f(ctx, a) }
