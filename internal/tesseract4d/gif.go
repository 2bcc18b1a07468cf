package tesseract4d

import (
	"image"
	"image/gif"
	"os"
)

// GIFSink collects frames and writes one animated GIF on Close.
// Delay is in 100ths of a second (e.g., 2 => 50 fps).
type GIFSink struct {
	Path          string
	Width, Height int
	Delay         int
	Camera        Camera

	out *gif.GIF
}

func (s *GIFSink) Begin(frames, _ int) error {
	s.out = &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	return nil
}

func (s *GIFSink) WriteFrame(_ int, fb *FrameBuffer) error {
	s.out.Image = append(s.out.Image, RenderFrame(fb, s.Camera, s.Width, s.Height))
	s.out.Delay = append(s.out.Delay, s.Delay)
	return nil
}

func (s *GIFSink) Close() error {
	if s.out == nil || len(s.out.Image) == 0 {
		return nil
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, s.out); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger.Info().Str("path", s.Path).Int("frames", len(s.out.Image)).Msg("Saved animated GIF")
	return nil
}
