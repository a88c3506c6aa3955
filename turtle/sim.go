package turtle

import (
	"image"

	"turtlecode/heading"
)

// Pose is the robot state between commands.
type Pose struct {
	Pos     image.Point
	Heading heading.Heading
	Pen     bool
}

// Trace is what a robot does when it runs a command stream.
type Trace struct {
	// Strokes are the pen-down polylines, one vertex per Forward.
	Strokes [][]image.Point
	// Rotation is the sum of all Rotate degrees.
	Rotation int
	// Travel is the total Forward distance.
	Travel int
	Final  Pose
	// Bounds covers every position the robot occupied.
	Bounds image.Rectangle
}

// Simulate runs cmds from the origin facing heading.East with the pen up.
// State carries across pen lifts exactly as on the robot: nothing resets
// the heading between strokes.
func Simulate(cmds []Command) Trace {
	var (
		t      Trace
		p      Pose
		stroke []image.Point
	)
	t.Bounds = cell(p.Pos)
	for _, c := range cmds {
		switch c.Kind {
		case PenDown:
			if !p.Pen {
				p.Pen = true
				stroke = []image.Point{p.Pos}
			}
		case PenUp:
			if p.Pen {
				p.Pen = false
				t.Strokes = append(t.Strokes, stroke)
				stroke = nil
			}
		case Rotate:
			p.Heading = p.Heading.Rotate(c.Arg)
			t.Rotation += c.Arg
		case Forward:
			p.Pos = p.Pos.Add(p.Heading.Vector().Mul(c.Arg))
			t.Travel += c.Arg
			t.Bounds = t.Bounds.Union(cell(p.Pos))
			if p.Pen {
				stroke = append(stroke, p.Pos)
			}
		}
	}
	if p.Pen {
		t.Strokes = append(t.Strokes, stroke)
	}
	t.Final = p
	return t
}

func cell(p image.Point) image.Rectangle {
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
}
