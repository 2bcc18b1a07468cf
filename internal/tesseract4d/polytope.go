package tesseract4d

import (
	"fmt"
	"math"
	"sort"
)

// Polytope names accepted by NewWireframe.
const (
	Pentachoron = "5-cell"
	Tesseract   = "8-cell"
	Orthoplex   = "16-cell"
	Icositetra  = "24-cell"
	Hexacosi    = "600-cell"
)

// Wireframe is the fixed 4D topology handed to the animation loop.
type Wireframe struct {
	Name     string
	Vertices []Point4
	Edges    []Edge
}

// Polytopes lists the names NewWireframe understands.
func Polytopes() []string {
	return []string{Pentachoron, Tesseract, Orthoplex, Icositetra, Hexacosi}
}

// NewWireframe builds a regular 4-polytope scaled by scale. The tesseract keeps
// the {-1,+1}^4 layout of BuildHypercube; the others are unit-radius sets whose
// edges join every vertex pair at the minimum distance.
func NewWireframe(name string, scale Real) (*Wireframe, error) {
	if scale == 0 {
		scale = 1
	}
	var verts []Vector4
	switch name {
	case Tesseract, "tesseract", "":
		h, err := BuildHypercube(Dim)
		if err != nil {
			return nil, err
		}
		w, err := h.Wireframe()
		if err != nil {
			return nil, err
		}
		for i := range w.Vertices {
			w.Vertices[i] = Point4(Vector4(w.Vertices[i]).Mul(scale))
		}
		return w, nil
	case Pentachoron:
		v := canonicalCell5()
		verts = v[:]
	case Orthoplex:
		v := canonical16Verts()
		verts = v[:]
	case Icositetra:
		v := canonical24Verts()
		verts = v[:]
	case Hexacosi:
		verts = verts600Unit()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolytope, name)
	}
	pts := make([]Point4, len(verts))
	for i, v := range verts {
		pts[i] = Point4(v.Mul(scale))
	}
	w := &Wireframe{Name: name, Vertices: pts, Edges: shortestEdges(pts)}
	DebugLog("Built %s: %d vertices, %d edges", name, len(w.Vertices), len(w.Edges))
	return w, nil
}

// shortestEdges joins all pairs whose distance matches the minimum within 1e-9 relative.
func shortestEdges(pts []Point4) []Edge {
	minD := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].Sub(pts[j]).Len(); d < minD {
				minD = d
			}
		}
	}
	tol := minD * 1e-9
	var edges []Edge
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if math.Abs(pts[i].Sub(pts[j]).Len()-minD) <= tol {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	return edges
}

// canonical regular 5-cell vertices in R^4 centered at origin.
// Constructed from 5D {e_i - centroid} projected onto the 4D
// subspace orthogonal to (1,1,1,1,1) via an orthonormal basis.
func canonicalCell5() [5]Vector4 {
	B := [4][5]Real{
		{1 / math.Sqrt2, -1 / math.Sqrt2, 0, 0, 0},
		{1 / math.Sqrt(6), 1 / math.Sqrt(6), -2 / math.Sqrt(6), 0, 0},
		{1 / math.Sqrt(12), 1 / math.Sqrt(12), 1 / math.Sqrt(12), -3 / math.Sqrt(12), 0},
		{1 / math.Sqrt(20), 1 / math.Sqrt(20), 1 / math.Sqrt(20), 1 / math.Sqrt(20), -4 / math.Sqrt(20)},
	}
	var V [5]Vector4
	for i := 0; i < 5; i++ {
		var c [4]Real
		for r := 0; r < 4; r++ {
			for k := 0; k < 5; k++ {
				w := -0.2
				if k == i {
					w = 0.8
				}
				c[r] += B[r][k] * w
			}
		}
		V[i] = Vector4{c[0], c[1], c[2], c[3]}.Norm()
	}
	return V
}

// ±e_i
func canonical16Verts() [8]Vector4 {
	return [8]Vector4{
		{+1, 0, 0, 0},
		{-1, 0, 0, 0},
		{0, +1, 0, 0},
		{0, -1, 0, 0},
		{0, 0, +1, 0},
		{0, 0, -1, 0},
		{0, 0, 0, +1},
		{0, 0, 0, -1},
	}
}

// all permutations of (±1,±1,0,0), scaled to unit radius
func canonical24Verts() [24]Vector4 {
	out := [24]Vector4{}
	idx := 0
	pos := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, p := range pos {
		i, j := p[0], p[1]
		for si := -1; si <= 1; si += 2 {
			for sj := -1; sj <= 1; sj += 2 {
				v := [4]Real{0, 0, 0, 0}
				v[i] = Real(si)
				v[j] = Real(sj)
				out[idx] = Vector4{v[0], v[1], v[2], v[3]}.Norm()
				idx++
			}
		}
	}
	return out
}

func evenPerms4() [][]int {
	return [][]int{
		{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
		{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
		{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
		{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
	}
}

// signVariants flips signs of the masked entries; any number of minus signs.
func signVariants(vals [4]Real, mask [4]bool) [][4]Real {
	out := make([][4]Real, 0, 16)
	for s := 0; s < 16; s++ {
		v := vals
		skip := false
		for i := 0; i < 4; i++ {
			if (s>>i)&1 == 0 {
				continue
			}
			if !mask[i] {
				skip = true // same vector as the one with this bit clear
				break
			}
			v[i] = -v[i]
		}
		if !skip {
			out = append(out, v)
		}
	}
	return out
}

func pushUnique(set map[[4]int64]struct{}, out *[]Vector4, v [4]Real) {
	const q = 1e12
	k := [4]int64{
		int64(math.Round(v[0] * q)),
		int64(math.Round(v[1] * q)),
		int64(math.Round(v[2] * q)),
		int64(math.Round(v[3] * q)),
	}
	if _, ok := set[k]; ok {
		return
	}
	set[k] = struct{}{}
	*out = append(*out, Vector4{v[0], v[1], v[2], v[3]}.Norm())
}

// Unit-radius 600-cell: 8 of (±1,0,0,0), 16 of (±½,±½,±½,±½) and 96 even
// permutations of (0, ±½, ±φ/2, ±1/(2φ)) with all sign choices.
func verts600Unit() []Vector4 {
	phi := (1 + math.Sqrt(5)) / 2

	set := make(map[[4]int64]struct{}, 128)
	out := make([]Vector4, 0, 120)

	for a := 0; a < 4; a++ {
		for s := -1; s <= 1; s += 2 {
			v := [4]Real{}
			v[a] = Real(s)
			pushUnique(set, &out, v)
		}
	}
	half := [4]Real{0.5, 0.5, 0.5, 0.5}
	for _, v := range signVariants(half, [4]bool{true, true, true, true}) {
		pushUnique(set, &out, v)
	}
	base := [4]Real{0, 0.5, 0.5 * phi, 0.5 / phi}
	for _, p := range evenPerms4() {
		v := [4]Real{base[p[0]], base[p[1]], base[p[2]], base[p[3]]}
		mask := [4]bool{v[0] != 0, v[1] != 0, v[2] != 0, v[3] != 0}
		for _, vv := range signVariants(v, mask) {
			pushUnique(set, &out, vv)
		}
	}
	if len(out) != 120 {
		DebugLog("verts600Unit: expected 120, got %d", len(out))
	}
	// stable order for reproducible edge lists
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.W < b.W
	})
	return out
}
