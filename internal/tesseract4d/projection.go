package tesseract4d

// Project builds the shared perspective-divide transform diag(k,k,k,0) with
// k = 1/(lightDistance - w). lightDistance == w gives k = ±Inf and the
// resulting coordinates are left as Inf/NaN on purpose.
func Project(lightDistance, w Real) Mat4 {
	k := 1 / (lightDistance - w)
	var M Mat4
	M.M[0][0] = k
	M.M[1][1] = k
	M.M[2][2] = k
	return M
}

// Project4Dto3D applies m to every point and keeps x,y,z. Order is preserved.
func Project4Dto3D(points []Point4, m Mat4) []Point3 {
	return Project4Dto3DInto(make([]Point3, len(points)), points, m)
}

// Project4Dto3DInto is Project4Dto3D writing into dst, which is grown if short.
func Project4Dto3DInto(dst []Point3, points []Point4, m Mat4) []Point3 {
	if cap(dst) < len(points) {
		dst = make([]Point3, len(points))
	}
	dst = dst[:len(points)]
	for i, p := range points {
		q := m.MulPoint(p)
		dst[i] = Point3{q.X, q.Y, q.Z}
	}
	return dst
}

// ProjectPoint divides by the point's own distance from the light.
func ProjectPoint(p Point4, lightDistance Real) Point3 {
	q := Project(lightDistance, p.W).MulPoint(p)
	return Point3{q.X, q.Y, q.Z}
}
