// Package export serializes robot command streams: the quoted-token text
// the Arduino firmware compiles in, bare token lines, G-code, jcode, CBOR,
// and a PNG preview of the pen path.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"turtlecode/turtle"
)

var (
	// ErrBadToken indicates text that is not a command token.
	ErrBadToken = errors.New("export: malformed command token")
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("export: unknown format")
)

const (
	penOnToken  = "paintON"
	penOffToken = "paintOFF"
)

// Token renders c as the firmware reads it: "F 10", "R 90", "R -90",
// "paintON" or "paintOFF".
func Token(c turtle.Command) string {
	switch c.Kind {
	case turtle.Forward:
		return "F " + strconv.Itoa(c.Arg)
	case turtle.Rotate:
		return "R " + strconv.Itoa(c.Arg)
	case turtle.PenDown:
		return penOnToken
	case turtle.PenUp:
		return penOffToken
	}
	return c.String()
}

// ParseToken is the inverse of Token.
func ParseToken(s string) (turtle.Command, error) {
	switch s {
	case penOnToken:
		return turtle.Down, nil
	case penOffToken:
		return turtle.Up, nil
	}
	f := strings.Fields(s)
	if len(f) != 2 {
		return turtle.Command{}, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	n, err := strconv.Atoi(f[1])
	if err != nil {
		return turtle.Command{}, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	switch {
	case f[0] == "F" && n > 0:
		return turtle.Move(n), nil
	case f[0] == "R" && (n == 90 || n == -90):
		return turtle.Turn(n), nil
	}
	return turtle.Command{}, fmt.Errorf("%w: %q", ErrBadToken, s)
}
