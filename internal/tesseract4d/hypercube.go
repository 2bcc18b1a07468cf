package tesseract4d

import (
	"fmt"
	"math"
)

// Edge joins two vertex indices, A < B.
type Edge struct {
	A, B int
}

// Hyperplane is a (normal, constant) descriptor bounding one cell face.
type Hyperplane struct {
	Normal   []Real
	Constant Real
}

// Hypercube is the n-cube on {-1,+1}^n. Vertex index i doubles as a bit
// vector: coordinate k is +1 iff bit k of i is set.
type Hypercube struct {
	Dim      int
	Vertices [][]Real
	Edges    []Edge
	Planes   []Hyperplane
}

// BuildHypercube enumerates 2^n vertices, n*2^(n-1) edges and n*2^n
// (axis, vertex) hyperplanes. Planes are not deduplicated; see UniquePlanes.
func BuildHypercube(n int) (*Hypercube, error) {
	if n < 0 || n > MaxDimension {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidDimension, n, MaxDimension)
	}
	numVertices := 1 << n

	vertices := make([][]Real, numVertices)
	for i := range vertices {
		v := make([]Real, n)
		for k := 0; k < n; k++ {
			if i&(1<<k) != 0 {
				v[k] = 1
			} else {
				v[k] = -1
			}
		}
		vertices[i] = v
	}

	// Neighbours j > i of vertex i are i with one clear bit set; walking k
	// upwards yields j ascending, i.e. the same order as a pairwise scan.
	edges := make([]Edge, 0, n*numVertices/2)
	for i := 0; i < numVertices; i++ {
		for k := 0; k < n; k++ {
			if i&(1<<k) == 0 {
				edges = append(edges, Edge{A: i, B: i | 1<<k})
			}
		}
	}

	planes := make([]Hyperplane, 0, n*numVertices)
	for i := 0; i < n; i++ {
		for j := 0; j < numVertices; j++ {
			normal := make([]Real, n)
			constant := 0.0
			for k := 0; k < n; k++ {
				var coeff Real
				if k == i {
					coeff = -1
				} else if vertices[j][k] == 1 {
					coeff = 1
				}
				normal[k] = coeff
				constant += coeff * vertices[j][k]
			}
			planes = append(planes, Hyperplane{Normal: normal, Constant: constant})
		}
	}

	DebugLog("Built %d-cube: %d vertices, %d edges, %d planes", n, len(vertices), len(edges), len(planes))
	return &Hypercube{Dim: n, Vertices: vertices, Edges: edges, Planes: planes}, nil
}

// Hamming counts coordinates where vertices a and b differ.
func (h *Hypercube) Hamming(a, b int) int {
	d := 0
	for k := 0; k < h.Dim; k++ {
		if h.Vertices[a][k] != h.Vertices[b][k] {
			d++
		}
	}
	return d
}

// Wireframe converts a 4-cube into the animated topology.
func (h *Hypercube) Wireframe() (*Wireframe, error) {
	if h.Dim != Dim {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, h.Dim)
	}
	pts := make([]Point4, len(h.Vertices))
	for i, v := range h.Vertices {
		pts[i] = Point4{v[0], v[1], v[2], v[3]}
	}
	edges := make([]Edge, len(h.Edges))
	copy(edges, h.Edges)
	return &Wireframe{Name: Tesseract, Vertices: pts, Edges: edges}, nil
}

// UniquePlanes drops exact duplicate descriptors, keeping first occurrences.
func UniquePlanes(planes []Hyperplane) []Hyperplane {
	seen := make(map[string]struct{}, len(planes))
	out := make([]Hyperplane, 0, len(planes))
	for _, p := range planes {
		k := planeKey(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

func planeKey(p Hyperplane) string {
	b := make([]byte, 0, 8*(len(p.Normal)+1))
	for _, c := range p.Normal {
		b = appendBits(b, c)
	}
	return string(appendBits(b, p.Constant))
}

func appendBits(b []byte, x Real) []byte {
	u := math.Float64bits(x + 0) // folds -0 into +0
	for s := 0; s < 64; s += 8 {
		b = append(b, byte(u>>s))
	}
	return b
}
