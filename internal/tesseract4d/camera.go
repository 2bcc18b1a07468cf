package tesseract4d

import "math"

// Camera is a standard perspective camera on the +z axis looking at the
// origin. It is independent of the 4D->3D projection.
type Camera struct {
	FovDeg   Real // vertical field of view
	Aspect   Real // width / height; 0 means "use the surface"
	Near     Real
	Far      Real
	Distance Real
}

// DefaultCamera matches the live scene: fov 75, near 0.1, far 1000, z=10.
func DefaultCamera() Camera {
	return Camera{FovDeg: CameraFovDeg, Near: CameraNear, Far: CameraFar, Distance: CameraDistance}
}

// PerspectiveMatrix is the GL-style clip transform for column vectors.
func PerspectiveMatrix(fovRad, aspect, near, far Real) Mat4 {
	f := 1.0 / math.Tan(fovRad*0.5)
	nf := 1.0 / (near - far)
	return Mat4{M: [4][4]Real{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, 2 * far * near * nf},
		{0, 0, -1, 0},
	}}
}

// ToScreen maps p to pixel coordinates on a width×height surface with y
// growing downwards. ok is false for points behind the camera or outside
// the depth range.
func (c Camera) ToScreen(p Point3, width, height Real) (x, y Real, ok bool) {
	aspect := c.Aspect
	if aspect == 0 {
		aspect = width / height
	}
	P := PerspectiveMatrix(c.FovDeg*math.Pi/180, aspect, c.Near, c.Far)
	clip := P.MulVec(Vector4{p.X, p.Y, p.Z - c.Distance, 1})
	if clip.W <= 0 || !isFinite(clip.W) {
		return 0, 0, false
	}
	nx, ny, nz := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
	if nz < -1 || nz > 1 || !isFinite(nx) || !isFinite(ny) {
		return 0, 0, false
	}
	return (nx + 1) * 0.5 * width, (1 - ny) * 0.5 * height, true
}
