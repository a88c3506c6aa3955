// Package turtle turns sequences of grid cells into relative motion
// commands for a pen-holding robot and interprets those commands back into
// pen strokes.
package turtle

import "fmt"

// Kind identifies a command.
type Kind uint8

const (
	Forward Kind = iota + 1
	Rotate
	PenDown
	PenUp
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "Forward"
	case Rotate:
		return "Rotate"
	case PenDown:
		return "PenDown"
	case PenUp:
		return "PenUp"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Command is one robot instruction. Arg is the distance of a Forward and
// the signed degrees of a Rotate; it is zero otherwise.
type Command struct {
	Kind Kind
	Arg  int
}

var (
	Down = Command{Kind: PenDown}
	Up   = Command{Kind: PenUp}
)

// Move returns a Forward command over distance d.
func Move(d int) Command {
	return Command{Kind: Forward, Arg: d}
}

// Turn returns a Rotate command by deg degrees. Positive is clockwise in
// image coordinates.
func Turn(deg int) Command {
	return Command{Kind: Rotate, Arg: deg}
}

func (c Command) String() string {
	switch c.Kind {
	case Forward, Rotate:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Arg)
	}
	return c.Kind.String()
}
