package export

import (
	"io"

	"github.com/JoshPattman/jcode"

	"turtlecode/turtle"
)

// WriteJCode runs cmds through the turtle and writes the strokes as jcode
// waypoints for the picasso robot. The y axis is flipped so the drawing is
// upright on the robot's plane.
func WriteJCode(w io.Writer, cmds []turtle.Command, opts Options) error {
	code := []jcode.Instruction{jcode.Speed{Speed: opts.Speed}}
	for _, stroke := range turtle.Simulate(cmds).Strokes {
		for i, p := range stroke {
			x, y := opts.point(p)
			code = append(code, jcode.Waypoint{XPos: x, YPos: -y})
			if i == 0 {
				code = append(code, jcode.Pen{Mode: jcode.PenDown})
			}
		}
		code = append(code, jcode.Pen{Mode: jcode.PenUp})
	}
	return jcode.NewEncoder(w).Write(code...)
}
