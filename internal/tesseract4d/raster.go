package tesseract4d

import "math"

// WalkLine visits every integer cell of the segment (x0,y0)-(x1,y1) with
// Bresenham's algorithm, both endpoints included.
func WalkLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := iabs(x1 - x0)
	dy := -iabs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Segment2 is a projected line on a surface.
type Segment2 struct {
	X0, Y0, X1, Y1 Real
}

// ScreenSegments runs every frame segment through the camera and returns
// the ones with both endpoints visible.
func ScreenSegments(fb *FrameBuffer, c Camera, width, height Real) []Segment2 {
	out := make([]Segment2, 0, fb.Len())
	for i := 0; i < fb.Len(); i++ {
		a, b := fb.Segment(i)
		x0, y0, ok0 := c.ToScreen(a, width, height)
		x1, y1, ok1 := c.ToScreen(b, width, height)
		if !ok0 || !ok1 {
			continue
		}
		out = append(out, Segment2{x0, y0, x1, y1})
	}
	return out
}

// ClipSegment clips s to the box [xmin,xmax]×[ymin,ymax] with Liang-Barsky,
// keeping its slope. It reports false when nothing of s is inside.
func ClipSegment(s Segment2, xmin, ymin, xmax, ymax Real) (Segment2, bool) {
	for _, v := range []Real{s.X0, s.Y0, s.X1, s.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s, false
		}
	}
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return s, false
	}
	p := [4]Real{-dx, dx, -dy, dy}
	q := [4]Real{s.X0 - xmin, xmax - s.X0, s.Y0 - ymin, ymax - s.Y0}
	t0, t1 := 0.0, 1.0
	e0, e1 := -1, -1
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return s, false
			}
			continue
		}
		r := q[i] / p[i]
		switch {
		case p[i] < 0 && r > t0:
			t0, e0 = r, i
		case p[i] > 0 && r < t1:
			t1, e1 = r, i
		}
		if t0 > t1 {
			return s, false
		}
	}
	c := Segment2{
		X0: s.X0 + t0*dx, Y0: s.Y0 + t0*dy,
		X1: s.X0 + t1*dx, Y1: s.Y0 + t1*dy,
	}
	// the coordinate that hit an edge lands on it exactly
	edge := [4]Real{xmin, xmax, ymin, ymax}
	snap := func(x, y *Real, e int) {
		switch e {
		case 0, 1:
			*x = edge[e]
		case 2, 3:
			*y = edge[e]
		}
	}
	snap(&c.X0, &c.Y0, e0)
	snap(&c.X1, &c.Y1, e1)
	return c, true
}

// RasterSegment walks s clipped to a width×height grid.
func RasterSegment(s Segment2, width, height int, plot func(x, y int)) {
	if width <= 0 || height <= 0 {
		return
	}
	c, ok := ClipSegment(s, 0, 0, Real(width-1), Real(height-1))
	if !ok {
		return
	}
	WalkLine(
		int(math.Round(c.X0)), int(math.Round(c.Y0)),
		int(math.Round(c.X1)), int(math.Round(c.Y1)),
		func(x, y int) {
			if x >= 0 && x < width && y >= 0 && y < height {
				plot(x, y)
			}
		},
	)
}
