package contour

import (
	"image"

	"turtlecode/grid"
	"turtlecode/heading"
)

// Region is one 4-connected component of on cells.
type Region struct {
	// Cells holds every cell of the component in visit order.
	Cells []image.Point
	// Boundary holds the cells with an off neighbour, in pop order.
	Boundary []image.Point
	// Strokes are the cell sequences to draw, one pen-down each.
	Strokes [][]image.Point
}

// Extract finds the regions of g in the order their seed cells appear in a
// row-major scan. Regions with fewer than two boundary cells are dropped.
func Extract(g *grid.Grid, opts ...Option) []Region {
	cfg := newConfig(opts...)
	visited := newMask(g.Bounds())
	var regions []Region
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			seed := image.Pt(x, y)
			if !g.On(seed) || visited.has(seed) {
				continue
			}
			r := flood(g, visited, seed)
			if len(r.Boundary) <= 1 {
				continue
			}
			switch cfg.order {
			case Walk:
				r.Strokes = walk(r.Boundary)
			default:
				r.Strokes = [][]image.Point{r.Boundary}
			}
			regions = append(regions, r)
		}
	}
	return regions
}

// flood collects the component containing seed with a depth-first stack.
// Cells may be pushed more than once; repeats are dropped on pop.
func flood(g *grid.Grid, visited *mask, seed image.Point) Region {
	var r Region
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.has(p) {
			continue
		}
		visited.set(p)
		r.Cells = append(r.Cells, p)
		if isBoundary(g, p) {
			r.Boundary = append(r.Boundary, p)
		}
		for _, h := range heading.All {
			n := p.Add(h.Vector())
			if g.On(n) && !visited.has(n) {
				stack = append(stack, n)
			}
		}
	}
	return r
}

// IsBoundary reports whether p is an on cell of g with at least one off
// 4-neighbour.
func IsBoundary(g *grid.Grid, p image.Point) bool {
	return g.On(p) && isBoundary(g, p)
}

func isBoundary(g *grid.Grid, p image.Point) bool {
	for _, h := range heading.All {
		if !g.On(p.Add(h.Vector())) {
			return true
		}
	}
	return false
}

// mask is a per-call visited set over a rectangle.
type mask struct {
	r    image.Rectangle
	bits []bool
}

func newMask(r image.Rectangle) *mask {
	return &mask{r: r, bits: make([]bool, r.Dx()*r.Dy())}
}

func (m *mask) index(p image.Point) int {
	return (p.Y-m.r.Min.Y)*m.r.Dx() + p.X - m.r.Min.X
}

func (m *mask) has(p image.Point) bool {
	return p.In(m.r) && m.bits[m.index(p)]
}

func (m *mask) set(p image.Point) {
	m.bits[m.index(p)] = true
}
