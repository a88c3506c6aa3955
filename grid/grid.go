// Package grid holds the immutable black/white cell grid that boundary
// extraction reads. A cell is "on" when it should be traced.
package grid

import (
	"errors"
	"image"
	"image/color"
	"strings"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown character in an ASCII grid.
	ErrBadCell = errors.New("grid: unknown cell character")
)

// Grid is a read-only width×height view of boolean cells.
// Coordinates outside the grid report off.
type Grid struct {
	w, h  int
	cells []bool
}

// New builds a w×h grid whose cell (x, y) is on(x, y).
func New(w, h int, on func(x, y int) bool) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = on(x, y)
		}
	}
	return g, nil
}

// FromRows builds a grid from row-major cells, rows[y][x].
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, ErrNonRectangular
		}
	}
	return New(w, len(rows), func(x, y int) bool { return rows[y][x] })
}

// Parse reads an ASCII grid, one row per line. 'X' and '#' are on,
// '.' and ' ' are off. Blank lines are ignored. Short rows are padded
// with off cells.
func Parse(s string) (*Grid, error) {
	var rows [][]bool
	w := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, c := range line {
			switch c {
			case 'X', 'x', '#':
				row = append(row, true)
			case '.', ' ':
				row = append(row, false)
			default:
				return nil, ErrBadCell
			}
		}
		w = max(w, len(row))
		rows = append(rows, row)
	}
	for i, r := range rows {
		if len(r) < w {
			rows[i] = append(r, make([]bool, w-len(r))...)
		}
	}
	return FromRows(rows)
}

// FromImage thresholds img: a pixel is on when its luma is below t.
func FromImage(img *image.Gray, t uint8) (*Grid, error) {
	b := img.Bounds()
	return New(b.Dx(), b.Dy(), func(x, y int) bool {
		return img.GrayAt(b.Min.X+x, b.Min.Y+y).Y < t
	})
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

// On reports whether p is an on cell. Points outside the grid are off.
func (g *Grid) On(p image.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.w || p.Y >= g.h {
		return false
	}
	return g.cells[p.Y*g.w+p.X]
}

// Count returns the number of on cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// String renders the grid with 'X' for on and '.' for off.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Image renders on cells black and off cells white.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(g.Bounds())
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := color.Gray{Y: 255}
			if g.cells[y*g.w+x] {
				c.Y = 0
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}
