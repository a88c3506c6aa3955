package turtle_test

import (
	"fmt"
	"image"

	"turtlecode/turtle"
)

func ExampleSynthesize() {
	cells := []image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}}
	fmt.Println(turtle.Synthesize(cells, 10))

	// Output:
	// [PenDown Forward(10) Forward(10) Rotate(90) Forward(10) Rotate(90) Forward(10) PenUp]
}

func ExampleMerge() {
	cmds := []turtle.Command{turtle.Down, turtle.Move(10), turtle.Move(10), turtle.Turn(-90), turtle.Move(10), turtle.Up}
	fmt.Println(turtle.Merge(cmds))

	// Output:
	// [PenDown Forward(20) Rotate(-90) Forward(10) PenUp]
}
