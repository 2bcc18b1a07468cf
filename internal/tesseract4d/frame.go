package tesseract4d

import "fmt"

// FrameBuffer is the flat line-list shared with a render host:
// [a.x,a.y,a.z,b.x,b.y,b.z, ...] in edge order. Its length and backing
// array never change; Dirty tells the host to re-upload.
type FrameBuffer struct {
	Positions []float32
	Dirty     bool
}

// NewFrameBuffer allocates room for edgeCount segments.
func NewFrameBuffer(edgeCount int) *FrameBuffer {
	return &FrameBuffer{Positions: make([]float32, FloatsPerEdge*edgeCount)}
}

// Assemble allocates a fresh buffer for points and edges.
func Assemble(points []Point3, edges []Edge) []float32 {
	fb := NewFrameBuffer(len(edges))
	fb.Assemble(points, edges)
	return fb.Positions
}

// Assemble overwrites the buffer in place and marks it dirty.
// It panics when the buffer was sized for a different edge count or an
// edge refers to a vertex outside points.
func (fb *FrameBuffer) Assemble(points []Point3, edges []Edge) {
	if len(fb.Positions) != FloatsPerEdge*len(edges) {
		panic(fmt.Sprintf("frame buffer holds %d floats, %d edges need %d", len(fb.Positions), len(edges), FloatsPerEdge*len(edges)))
	}
	n := len(points)
	buf := fb.Positions
	for i, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			panic(fmt.Sprintf("edge %d (%d,%d) index out of range [0,%d)", i, e.A, e.B, n))
		}
		a, b := points[e.A], points[e.B]
		o := FloatsPerEdge * i
		buf[o+0], buf[o+1], buf[o+2] = float32(a.X), float32(a.Y), float32(a.Z)
		buf[o+3], buf[o+4], buf[o+5] = float32(b.X), float32(b.Y), float32(b.Z)
	}
	fb.Dirty = true
}

// MarkClean is called by the host once it has consumed the contents.
func (fb *FrameBuffer) MarkClean() { fb.Dirty = false }

// Len returns the number of segments.
func (fb *FrameBuffer) Len() int { return len(fb.Positions) / FloatsPerEdge }

// Segment returns the endpoints of segment i.
func (fb *FrameBuffer) Segment(i int) (Point3, Point3) {
	o := FloatsPerEdge * i
	p := fb.Positions[o : o+FloatsPerEdge]
	return Point3{Real(p[0]), Real(p[1]), Real(p[2])}, Point3{Real(p[3]), Real(p[4]), Real(p[5])}
}
