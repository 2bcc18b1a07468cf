package tesseract4d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RawSink dumps frame buffers as little-endian binary:
// int32 frameCount, int32 floatsPerFrame, then frameCount*floatsPerFrame float32.
// If recording stops early the header count is rewritten on Close.
type RawSink struct {
	Path string

	f       *os.File
	w       *bufio.Writer
	planned int
	written int
	floats  int
}

func (s *RawSink) Begin(frames, segments int) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	s.f, s.w = f, bufio.NewWriter(f)
	s.planned, s.floats = frames, segments*FloatsPerEdge
	if err := binary.Write(s.w, binary.LittleEndian, int32(frames)); err != nil {
		return err
	}
	return binary.Write(s.w, binary.LittleEndian, int32(s.floats))
}

func (s *RawSink) WriteFrame(_ int, fb *FrameBuffer) error {
	if len(fb.Positions) != s.floats {
		return fmt.Errorf("frame has %d floats, header says %d", len(fb.Positions), s.floats)
	}
	if err := binary.Write(s.w, binary.LittleEndian, fb.Positions); err != nil {
		return err
	}
	s.written++
	return nil
}

func (s *RawSink) Close() error {
	if s.f == nil {
		return nil
	}
	defer func() { s.f = nil }()
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	if s.written != s.planned {
		if _, err := s.f.Seek(0, io.SeekStart); err != nil {
			s.f.Close()
			return err
		}
		if err := binary.Write(s.f, binary.LittleEndian, int32(s.written)); err != nil {
			s.f.Close()
			return err
		}
	}
	return s.f.Close()
}

// LoadRawFrames reads a file written by RawSink.
func LoadRawFrames(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var frames, floats int32
	if err := binary.Read(r, binary.LittleEndian, &frames); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &floats); err != nil {
		return nil, err
	}
	if frames < 0 || floats < 0 {
		return nil, fmt.Errorf("corrupt header: frames=%d floats=%d", frames, floats)
	}
	out := make([][]float32, frames)
	for i := range out {
		out[i] = make([]float32, floats)
		if err := binary.Read(r, binary.LittleEndian, out[i]); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return out, nil
}
