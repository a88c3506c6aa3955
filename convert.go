package main

import (
	"fmt"
	"image"

	"turtlecode/contour"
	"turtlecode/grid"
	"turtlecode/turtle"
)

// Result is one grid's conversion.
type Result struct {
	Regions  []contour.Region
	Commands []turtle.Command
}

// Convert extracts the regions of g and compiles their strokes into a
// merged command stream, step units per cell.
func Convert(g *grid.Grid, step int, opts ...contour.Option) (Result, error) {
	if step <= 0 {
		return Result{}, fmt.Errorf("%w: step length must be positive, got %d", ErrInvalidConfig, step)
	}
	regions := contour.Extract(g, opts...)
	var strokes [][]image.Point
	for _, r := range regions {
		strokes = append(strokes, r.Strokes...)
	}
	return Result{
		Regions:  regions,
		Commands: turtle.Compile(strokes, step),
	}, nil
}
