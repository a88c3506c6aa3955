package contour

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"turtlecode/grid"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)
	return g
}

func randomGrid(t *testing.T, rng *rand.Rand, w, h int, density float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, func(x, y int) bool { return rng.Float64() < density })
	require.NoError(t, err)
	return g
}

// TestExtractSolidSquare checks the 3×3 block: one region, the eight
// perimeter cells in pop order, and no centre cell.
func TestExtractSolidSquare(t *testing.T) {
	g := mustParse(t, "XXX\nXXX\nXXX")
	regions := Extract(g)
	require.Len(t, regions, 1)

	want := []image.Point{
		{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 0}, {2, 0}, {2, 1}, {2, 2},
	}
	require.Equal(t, want, regions[0].Boundary)
	require.NotContains(t, regions[0].Boundary, image.Pt(1, 1))
	require.Len(t, regions[0].Cells, 9)
	require.Equal(t, [][]image.Point{want}, regions[0].Strokes)
}

func TestExtractEmpty(t *testing.T) {
	g := mustParse(t, ".....\n.....\n.....\n.....\n.....")
	require.Empty(t, Extract(g))
}

// TestExtractDiscardsSinglePixels covers the length > 1 rule: a lone pixel
// has one boundary cell and can never be traced.
func TestExtractDiscardsSinglePixels(t *testing.T) {
	require.Empty(t, Extract(mustParse(t, "X")))

	g := mustParse(t, `
X.X
...
.XX
`)
	regions := Extract(g)
	require.Len(t, regions, 1)
	require.Equal(t, []image.Point{{1, 2}, {2, 2}}, regions[0].Boundary)
}

func TestExtractSeedOrder(t *testing.T) {
	g := mustParse(t, `
..XX
X...
X.XX
`)
	regions := Extract(g)
	require.Len(t, regions, 3)
	require.Equal(t, image.Pt(2, 0), regions[0].Cells[0])
	require.Equal(t, image.Pt(0, 1), regions[1].Cells[0])
	require.Equal(t, image.Pt(2, 2), regions[2].Cells[0])
}

func TestExtractInteriorCells(t *testing.T) {
	g := mustParse(t, `
XXXXX
XXXXX
XXXXX
XXXXX
`)
	regions := Extract(g)
	require.Len(t, regions, 1)
	require.Len(t, regions[0].Boundary, 14)
	for _, p := range []image.Point{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}} {
		require.NotContains(t, regions[0].Boundary, p)
	}
}

// TestExtractPartition checks on random grids that regions are disjoint,
// cover every on cell that has an on neighbour, and are 4-connected.
func TestExtractPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(20), 1+rng.Intn(20), rng.Float64())
		owner := make(map[image.Point]int)
		for ri, r := range Extract(g) {
			for _, p := range r.Cells {
				require.True(t, g.On(p))
				prev, dup := owner[p]
				require.False(t, dup, "cell %v in regions %d and %d", p, prev, ri)
				owner[p] = ri
			}
		}
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := image.Pt(x, y)
				if !g.On(p) {
					continue
				}
				_, covered := owner[p]
				require.Equal(t, !isolated(g, p), covered, "cell %v", p)
				for _, n := range []image.Point{p.Add(image.Pt(1, 0)), p.Add(image.Pt(0, 1))} {
					if g.On(n) {
						require.Equal(t, owner[p], owner[n], "neighbours %v and %v split", p, n)
					}
				}
			}
		}
	}
}

// TestExtractBoundary checks on random grids that a cell is in the boundary
// sequence iff it has an off 4-neighbour, and that the sequence follows
// visit order.
func TestExtractBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(16), 1+rng.Intn(16), 0.5+rng.Float64()/2)
		for _, r := range Extract(g) {
			require.Greater(t, len(r.Boundary), 1)
			var want []image.Point
			for _, p := range r.Cells {
				if IsBoundary(g, p) {
					want = append(want, p)
				}
			}
			require.Equal(t, want, r.Boundary)
		}
	}
}

func isolated(g *grid.Grid, p image.Point) bool {
	for _, d := range []image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		if g.On(p.Add(d)) {
			return false
		}
	}
	return true
}
