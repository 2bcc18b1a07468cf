package tesseract4d

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func iabs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// digits is the decimal width of n-1, at least 1; used to pad frame names.
func digits(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Log10(Real(n-1))) + 1
}
