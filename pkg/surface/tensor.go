package surface

import (
	"github.com/chazu/curvekit/pkg/geom"
)

// DefaultDegree is the B-spline degree used for every surface in curvekit.
const DefaultDegree = 3

// Evaluate samples the tensor-product B-spline surface controlled by grid on
// a resU x resV lattice of (u, v) parameters stepped linearly over [0,1].
// Rows of the control grid run along u, columns along v.
//
// Each sample is Σ N_i(u)·N_j(v)·P[i][j], divided by the total weight when
// that weight is nonzero. A direction with fewer than degree+1 control
// points is evaluated at the highest degree it supports. An empty or ragged
// grid, or a non-positive resolution, yields an empty grid.
func Evaluate(grid geom.Grid, degree, resU, resV int) geom.Grid {
	if !grid.IsRectangular() || resU < 1 || resV < 1 || degree < 0 {
		return nil
	}
	rows, cols := grid.Rows(), grid.Cols()
	du, dv := min(degree, rows-1), min(degree, cols-1)
	knotsU := ClampedKnots(rows, du)
	knotsV := ClampedKnots(cols, dv)

	// Basis values depend on one parameter only; tabulate them per sample.
	bu := basisTable(rows, du, resU, knotsU)
	bv := basisTable(cols, dv, resV, knotsV)

	out := geom.NewGrid(resU, resV)
	for a := 0; a < resU; a++ {
		for b := 0; b < resV; b++ {
			var sum geom.Point
			var weight float32
			for i := 0; i < rows; i++ {
				nu := bu[a][i]
				if nu == 0 {
					continue
				}
				for j := 0; j < cols; j++ {
					w := nu * bv[b][j]
					if w == 0 {
						continue
					}
					sum = sum.Add(grid[i][j].Mul(w))
					weight += w
				}
			}
			if weight != 0 {
				sum = sum.Mul(1 / weight)
			}
			out[a][b] = sum
		}
	}
	return out
}

// basisTable returns N_i(t_s) for every sample s and control index i.
func basisTable(count, degree, res int, knots []float32) [][]float32 {
	table := make([][]float32, res)
	for s := range table {
		t := param(s, res)
		row := make([]float32, count)
		for i := range row {
			row[i] = Basis(i, degree+1, t, knots)
		}
		table[s] = row
	}
	return table
}

// param maps sample s of res onto [0,1]. A single sample sits at 0.
func param(s, res int) float32 {
	if res <= 1 {
		return 0
	}
	return float32(s) / float32(res-1)
}

// GridMesh triangulates a sampled surface: two triangles per cell, flat
// duplicated vertices, UVs (i/(rows-1), j/(cols-1)) and a uniform color.
// Grids smaller than 2x2 produce an empty mesh.
func GridMesh(name string, g geom.Grid, c geom.Color) *geom.Mesh {
	m := &geom.Mesh{Name: name, Topology: geom.Triangles}
	if !g.IsRectangular() || g.Rows() < 2 || g.Cols() < 2 {
		return m
	}
	rows, cols := g.Rows(), g.Cols()
	n := (rows - 1) * (cols - 1) * 6
	m.Positions = make([]geom.Point, 0, n)
	m.TexCoords = make([]geom.TexCoord, 0, n)
	uv := func(i, j int) geom.TexCoord {
		return geom.TexCoord{param(i, rows), param(j, cols)}
	}
	for i := 0; i+1 < rows; i++ {
		for j := 0; j+1 < cols; j++ {
			corners := [4][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}}
			for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
				r, s := corners[k][0], corners[k][1]
				m.Positions = append(m.Positions, g[r][s])
				m.TexCoords = append(m.TexCoords, uv(r, s))
			}
		}
	}
	m.Fill(c)
	return m
}
