package tesseract4d

// Point4 is a vertex of a 4D wireframe.
type Point4 struct {
	X, Y, Z, W Real
}

// Add translates p by v.
func (p Point4) Add(v Vector4) Point4 { return Point4(Vector4(p).Add(v)) }

// Sub returns the vector from q to p.
func (p Point4) Sub(q Point4) Vector4 { return Vector4(p).Sub(Vector4(q)) }

// Point3 is a projected vertex; it has no identity beyond its index.
type Point3 struct {
	X, Y, Z Real
}
