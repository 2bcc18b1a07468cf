package tesseract4d

// Mat4 is row-major and acts on column vectors: MulVec(v) = M·v.
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	var R Mat4
	for i := range R.M {
		R.M[i][i] = 1
	}
	return R
}

// Mul returns A·B; applied to a vector, B acts first.
func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r, row := range A.M {
		for c := 0; c < 4; c++ {
			for k, a := range row {
				R.M[r][c] += a * B.M[k][c]
			}
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var T Mat4
	for r, row := range A.M {
		for c, v := range row {
			T.M[c][r] = v
		}
	}
	return T
}

// ApproxEqual compares element-wise within tol.
func (A Mat4) ApproxEqual(B Mat4, tol Real) bool {
	for r, row := range A.M {
		for c, v := range row {
			if d := v - B.M[r][c]; d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

func (A Mat4) MulVec(v Vector4) Vector4 {
	in := v.Array()
	var out [4]Real
	for r, row := range A.M {
		for k, a := range row {
			out[r] += a * in[k]
		}
	}
	return Vector4{out[0], out[1], out[2], out[3]}
}

// MulPoint treats p as a plain 4-vector; w is the fourth spatial axis, not
// a homogeneous coordinate.
func (A Mat4) MulPoint(p Point4) Point4 {
	return Point4(A.MulVec(Vector4(p)))
}
