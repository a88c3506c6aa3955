// Package heading defines the four cardinal headings a plotting turtle can
// face and their fixed mapping to grid unit vectors.
//
// Headings are measured in degrees in image coordinates, where y grows
// downward, so a +90 rotation turns clockwise on screen:
//
//	0   -> (1, 0)
//	90  -> (0, 1)
//	180 -> (-1, 0)
//	270 -> (0, -1)
package heading

import (
	"fmt"
	"image"
)

// Heading is a cardinal direction in degrees.
type Heading int

const (
	East  Heading = 0
	South Heading = 90
	West  Heading = 180
	North Heading = 270
)

// All lists the headings in neighbour visiting order.
var All = [4]Heading{East, South, West, North}

var vectors = [4]image.Point{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// Vector returns the unit step for h.
func (h Heading) Vector() image.Point {
	return vectors[h.index()]
}

// FromVector returns the heading whose unit vector is v. It reports false
// when v is not one of the four unit vectors.
func FromVector(v image.Point) (Heading, bool) {
	for i, u := range vectors {
		if u == v {
			return All[i], true
		}
	}
	return 0, false
}

// Diff returns the clockwise angle from h to to, in [0, 360).
func (h Heading) Diff(to Heading) int {
	return normalize(int(to) - int(h))
}

// Rotate returns h turned by deg degrees. deg must be a multiple of 90.
func (h Heading) Rotate(deg int) Heading {
	return Heading(normalize(int(h) + deg))
}

func (h Heading) String() string {
	switch h {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	}
	return fmt.Sprintf("heading(%d)", int(h))
}

func (h Heading) index() int {
	return normalize(int(h)) / 90 % 4
}

func normalize(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
