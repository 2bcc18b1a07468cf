package tesseract4d

import "math"

// Vector4 is a displacement in R^4; Point4 converts to it directly.
type Vector4 struct {
	X, Y, Z, W Real
}

func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return a.Add(b.Mul(-1)) }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{s * v.X, s * v.Y, s * v.Z, s * v.W} }

func (a Vector4) Dot(b Vector4) Real {
	var sum Real
	bb := b.Array()
	for i, x := range a.Array() {
		sum += x * bb[i]
	}
	return sum
}

func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm scales v to unit length; the zero vector is returned unchanged.
func (v Vector4) Norm() Vector4 {
	if l := v.Len(); l != 0 {
		return v.Mul(1 / l)
	}
	return v
}

// Array exposes the components for index-based loops.
func (v Vector4) Array() [4]Real { return [4]Real{v.X, v.Y, v.Z, v.W} }
