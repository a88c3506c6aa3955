package contour

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkSolidSquare(t *testing.T) {
	g := mustParse(t, "XXX\nXXX\nXXX")
	regions := Extract(g, WithOrder(Walk))
	require.Len(t, regions, 1)

	want := []image.Point{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {0, 0},
	}
	require.Equal(t, [][]image.Point{want}, regions[0].Strokes)
	// The discovery sequence is kept alongside the walk.
	require.Len(t, regions[0].Boundary, 8)
}

func TestWalkBacktracksOverBranches(t *testing.T) {
	g := mustParse(t, `
XXXXX
..X..
..X..
`)
	regions := Extract(g, WithOrder(Walk))
	require.Len(t, regions, 1)
	require.Len(t, regions[0].Strokes, 1)
	stroke := regions[0].Strokes[0]
	want := []image.Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {3, 0}, {2, 0}, {2, 1}, {2, 2},
	}
	require.Equal(t, want, stroke)
}

func TestWalkDiagonalBoundarySplits(t *testing.T) {
	// The corner cells of a plus touch the arms only diagonally once the
	// centre is interior, so the boundary falls apart into several strokes.
	g := mustParse(t, `
.X.
XXX
.X.
`)
	regions := Extract(g, WithOrder(Walk))
	require.Len(t, regions, 1)
	require.Len(t, regions[0].Strokes, 4)
	for _, s := range regions[0].Strokes {
		require.Len(t, s, 1)
	}
}

// TestWalkProperties checks on random grids that walk strokes only take
// unit steps and cover exactly the boundary cells.
func TestWalkProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 2+rng.Intn(18), 2+rng.Intn(18), 0.4+rng.Float64()/2)
		for _, r := range Extract(g, WithOrder(Walk)) {
			want := make(map[image.Point]bool)
			for _, p := range r.Boundary {
				want[p] = true
			}
			got := make(map[image.Point]bool)
			for _, s := range r.Strokes {
				require.NotEmpty(t, s)
				for j, p := range s {
					got[p] = true
					if j > 0 {
						require.True(t, adjacent(s[j-1], p), "step %v -> %v", s[j-1], p)
					}
				}
			}
			require.Equal(t, want, got)
		}
	}
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("walk")
	require.NoError(t, err)
	require.Equal(t, Walk, o)
	require.Equal(t, "discovery", Discovery.String())
	_, err = ParseOrder("spiral")
	require.Error(t, err)
}
