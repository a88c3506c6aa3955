package turtle

import (
	"image"

	"turtlecode/heading"
)

// Synthesize emits the commands that trace cells in order with the pen
// down, moving step units per cell. The turtle starts at cells[0] facing
// heading.East. A pair of consecutive cells that are not 4-adjacent is
// skipped and the turtle stays where it was, so the next cell is compared
// against the last cell actually reached.
//
// A single cell yields PenDown, PenUp. An empty sequence yields nothing.
func Synthesize(cells []image.Point, step int) []Command {
	if len(cells) == 0 {
		return nil
	}
	cmds := []Command{Down}
	h := heading.East
	cur := cells[0]
	for _, next := range cells[1:] {
		target, ok := heading.FromVector(next.Sub(cur))
		if !ok {
			continue
		}
		cmds = appendTurn(cmds, h, target)
		h = target
		cmds = append(cmds, Move(step))
		cur = next
	}
	return append(cmds, Up)
}

// appendTurn appends the quarter turns that rotate from to to. A half turn
// is two +90 turns; the robot has no 180 primitive.
func appendTurn(cmds []Command, from, to heading.Heading) []Command {
	switch from.Diff(to) {
	case 90:
		cmds = append(cmds, Turn(90))
	case 270:
		cmds = append(cmds, Turn(-90))
	case 180:
		cmds = append(cmds, Turn(90), Turn(90))
	}
	return cmds
}

// Merge collapses each run of consecutive Forward commands into one Forward
// carrying the summed distance. Other commands pass through in order.
// Merge(Merge(c)) equals Merge(c).
func Merge(cmds []Command) []Command {
	merged := make([]Command, 0, len(cmds))
	acc := 0
	for _, c := range cmds {
		if c.Kind == Forward {
			acc += c.Arg
			continue
		}
		if acc > 0 {
			merged = append(merged, Move(acc))
			acc = 0
		}
		merged = append(merged, c)
	}
	if acc > 0 {
		merged = append(merged, Move(acc))
	}
	return merged
}

// Compile synthesizes every stroke, concatenates the results and merges the
// whole stream once.
func Compile(strokes [][]image.Point, step int) []Command {
	var raw []Command
	for _, s := range strokes {
		raw = append(raw, Synthesize(s, step)...)
	}
	return Merge(raw)
}
