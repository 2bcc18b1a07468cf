package tesseract4d

import (
	"fmt"
	"image/png"
	"os"
)

// PNGSink writes one PNG per frame as <Prefix>_<n>.png, n zero-padded to the
// width of the frame count.
type PNGSink struct {
	Prefix        string
	Width, Height int
	Camera        Camera

	pad int
}

func (s *PNGSink) Begin(frames, _ int) error {
	s.pad = digits(frames)
	return nil
}

// FrameName returns the file written for frame n.
func (s *PNGSink) FrameName(n int) string {
	return fmt.Sprintf("%s_%0*d.png", s.Prefix, max(s.pad, 1), n)
}

func (s *PNGSink) WriteFrame(n int, fb *FrameBuffer) error {
	img := RenderFrame(fb, s.Camera, s.Width, s.Height)
	f, err := os.Create(s.FrameName(n))
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *PNGSink) Close() error { return nil }
