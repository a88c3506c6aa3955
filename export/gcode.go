package export

import (
	"fmt"
	"image"
	"io"
	"strings"

	"turtlecode/turtle"
)

// Options maps turtle units onto a device.
type Options struct {
	// Scale is device units per turtle unit.
	Scale float64
	// Offset is added to both device axes.
	Offset float64
	// Speed is the jcode toolhead speed in device units per second.
	Speed float64
}

// DefaultOptions returns a 1:1 mapping with the jcode speed used by the
// picasso robot.
func DefaultOptions() Options {
	return Options{Scale: 1, Speed: 5}
}

func (o Options) point(p image.Point) (x, y float64) {
	return o.Offset + float64(p.X)*o.Scale, o.Offset + float64(p.Y)*o.Scale
}

// WriteGCode runs cmds through the turtle and writes the pen-down strokes
// as absolute G-code moves. M3 lowers the pen and M5 raises it.
func WriteGCode(w io.Writer, cmds []turtle.Command, opts Options) error {
	var sb strings.Builder
	sb.WriteString("G21\nG90\nM5\nG0 F3000\nG1 F1500\n")

	for _, stroke := range turtle.Simulate(cmds).Strokes {
		sb.WriteString("M5\n")
		for i, p := range stroke {
			x, y := opts.point(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("G0 X%.3f Y%.3f\nM3 S1000\n", x, y))
			} else {
				sb.WriteString(fmt.Sprintf("G1 X%.3f Y%.3f\n", x, y))
			}
		}
	}

	sb.WriteString("M5\nG0 X0 Y0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
