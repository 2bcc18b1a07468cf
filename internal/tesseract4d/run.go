package tesseract4d

import (
	"context"
	"fmt"
	"strings"
)

// Run builds the configured wireframe and hands an animator to host.
func Run(ctx context.Context, cfg *Config, host Host) error {
	w, err := cfg.Wireframe()
	if err != nil {
		return err
	}
	state := NewState(w, cfg.Settings())
	a, err := NewAnimator(state)
	if err != nil {
		return err
	}
	Logger.Info().
		Str("polytope", w.Name).
		Int("vertices", len(w.Vertices)).
		Int("edges", len(w.Edges)).
		Float64("lightSource", cfg.LightSource).
		Float64("projectionW", cfg.ProjectionW).
		Msg("Starting animation")
	return host.Run(ctx, a)
}

// DefaultOutBase names the output of a headless host when out is unset.
const DefaultOutBase = "tesseract"

// HeadlessHost returns the recorder for gif, png, raw and wkt hosts. An empty
// cfg.Out becomes tesseract.<host>, or the tesseract prefix for png.
func HeadlessHost(cfg *Config) (Host, error) {
	cam := cfg.ViewCamera()
	host := strings.ToLower(cfg.Host)
	out := cfg.Out
	if out == "" {
		out = DefaultOutBase + "." + host
	}
	var sink FrameSink
	switch host {
	case "gif":
		sink = &GIFSink{Path: out, Width: cfg.Width, Height: cfg.Height, Delay: cfg.GIFDelay, Camera: cam}
	case "png":
		sink = &PNGSink{Prefix: strings.TrimSuffix(out, ".png"), Width: cfg.Width, Height: cfg.Height, Camera: cam}
	case "raw":
		sink = &RawSink{Path: out}
	case "wkt":
		sink = &WKTSink{Path: out}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHost, cfg.Host)
	}
	return &Recorder{
		Frames:  cfg.Frames,
		Pointer: Pointer{X: cfg.Pointer.X, Y: cfg.Pointer.Y},
		Sweep:   cfg.Pointer.Sweep,
		Sink:    sink,
	}, nil
}

// Summary describes an n-cube.
type Summary struct {
	Dim          int
	Vertices     int
	Edges        int
	Planes       int
	UniquePlanes int
}

// Describe builds the n-cube and counts its parts.
func Describe(n int) (Summary, error) {
	h, err := BuildHypercube(n)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Dim:          n,
		Vertices:     len(h.Vertices),
		Edges:        len(h.Edges),
		Planes:       len(h.Planes),
		UniquePlanes: len(UniquePlanes(h.Planes)),
	}
	Logger.Info().
		Int("dimension", s.Dim).
		Int("vertices", s.Vertices).
		Int("edges", s.Edges).
		Int("planes", s.Planes).
		Int("uniquePlanes", s.UniquePlanes).
		Msg("Hypercube")
	return s, nil
}
