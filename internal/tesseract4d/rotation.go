package tesseract4d

import "math"

// Rot4 holds angles in radians for the three planes that involve the w axis.
type Rot4 struct {
	XW, YW, ZW Real
}

// rotWPlane rotates the (axis, w) plane and fixes the other two axes.
// Every plane uses M[i][i]=c, M[i][3]=-s, M[3][i]=s, M[3][3]=c, so a
// positive angle turns +axis towards +w.
func rotWPlane(axis int, a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[axis][axis], M.M[axis][3] = c, -s
	M.M[3][axis], M.M[3][3] = s, c
	return M
}

func RotateXW(a Real) Mat4 { return rotWPlane(0, a) }
func RotateYW(a Real) Mat4 { return rotWPlane(1, a) }
func RotateZW(a Real) Mat4 { return rotWPlane(2, a) }

// Rotate composes XW·YW·ZW, so ZW is applied to a point first.
func Rotate(xw, yw, zw Real) Mat4 {
	return RotateXW(xw).Mul(RotateYW(yw)).Mul(RotateZW(zw))
}

// Matrix builds the composed transform for r.
func (r Rot4) Matrix() Mat4 { return Rotate(r.XW, r.YW, r.ZW) }

// ApplyTransform replaces every point with m·p in place.
func ApplyTransform(points []Point4, m Mat4) {
	for i := range points {
		points[i] = m.MulPoint(points[i])
	}
}
