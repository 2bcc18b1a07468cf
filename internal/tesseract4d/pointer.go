package tesseract4d

import "math"

// Pointer is the normalized 2D input signal, each axis roughly in [-1,1].
type Pointer struct {
	X, Y Real
}

// NormalizePointer maps surface coordinates so that the top-left corner is
// (1,1) and the bottom-right corner is (-1,-1).
func NormalizePointer(px, py, width, height Real) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: -(px/width)*2 + 1,
		Y: -(py/height)*2 + 1,
	}
}

// Angles derives this frame's rotation from the pointer; zw is a fixed step.
func Angles(p Pointer, speed, zwStep Real) Rot4 {
	return Rot4{
		XW: math.Pi * p.X * speed,
		YW: math.Pi * p.Y * speed,
		ZW: zwStep,
	}
}
