package turtle

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"turtlecode/heading"
)

func TestSimulateSquare(t *testing.T) {
	cmds := []Command{
		Down,
		Move(2), Turn(90),
		Move(2), Turn(90),
		Move(2), Turn(90),
		Move(2), Turn(90),
		Up,
	}
	tr := Simulate(cmds)
	require.Equal(t, [][]image.Point{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}, tr.Strokes)
	require.Equal(t, 360, tr.Rotation)
	require.Equal(t, 8, tr.Travel)
	require.Equal(t, Pose{Heading: heading.East}, tr.Final)
	require.Equal(t, image.Rect(0, 0, 3, 3), tr.Bounds)
}

func TestSimulatePenUpMoves(t *testing.T) {
	tr := Simulate([]Command{Move(3), Down, Turn(-90), Move(1)})
	require.Equal(t, [][]image.Point{{{3, 0}, {3, -1}}}, tr.Strokes, "open stroke is flushed")
	require.Equal(t, heading.North, tr.Final.Heading)
	require.True(t, tr.Final.Pen)
	require.Equal(t, image.Rect(0, -1, 4, 1), tr.Bounds)
}

// TestSimulateCarriesHeading shows that a second stroke starts with the
// heading the first one left behind.
func TestSimulateCarriesHeading(t *testing.T) {
	cmds := Compile([][]image.Point{
		{{0, 0}, {0, 1}},
		{{5, 5}, {6, 5}},
	}, 1)
	tr := Simulate(cmds)
	require.Len(t, tr.Strokes, 2)
	require.Equal(t, []image.Point{{0, 1}, {0, 2}}, tr.Strokes[1])
}
