package tesseract4d

import (
	"bufio"
	"fmt"
	"os"

	"github.com/peterstace/simplefeatures/geom"
)

// FrameGeometry converts a frame into an XYZ multi-linestring, one line per
// edge. Validation is off so end-on edges (equal XY) and Inf/NaN frames are kept.
func FrameGeometry(fb *FrameBuffer) (geom.MultiLineString, error) {
	lss := make([]geom.LineString, 0, fb.Len())
	for i := 0; i < fb.Len(); i++ {
		o := FloatsPerEdge * i
		coords := make([]float64, FloatsPerEdge)
		for k := range coords {
			coords[k] = float64(fb.Positions[o+k])
		}
		ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXYZ), geom.DisableAllValidations)
		if err != nil {
			return geom.MultiLineString{}, fmt.Errorf("segment %d: %w", i, err)
		}
		lss = append(lss, ls)
	}
	return geom.NewMultiLineString(lss, geom.DisableAllValidations), nil
}

// WKTSink writes one MULTILINESTRING Z per frame, one per line.
type WKTSink struct {
	Path string

	f *os.File
	w *bufio.Writer
}

func (s *WKTSink) Begin(_, _ int) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	s.f, s.w = f, bufio.NewWriter(f)
	return nil
}

func (s *WKTSink) WriteFrame(n int, fb *FrameBuffer) error {
	mls, err := FrameGeometry(fb)
	if err != nil {
		return fmt.Errorf("frame %d: %w", n, err)
	}
	if _, err := s.w.WriteString(mls.AsText()); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *WKTSink) Close() error {
	if s.f == nil {
		return nil
	}
	defer func() { s.f = nil }()
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
