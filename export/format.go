package export

import (
	"fmt"
	"io"

	"turtlecode/turtle"
)

// Format names an output encoding.
type Format string

const (
	Legacy Format = "legacy"
	Lines  Format = "lines"
	GCode  Format = "gcode"
	JCode  Format = "jcode"
	CBOR   Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{Legacy, Lines, GCode, JCode, CBOR}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes cmds to w in format f.
func Write(w io.Writer, f Format, cmds []turtle.Command, opts Options) error {
	switch f {
	case Legacy:
		return WriteLegacy(w, cmds)
	case Lines:
		return WriteLines(w, cmds)
	case GCode:
		return WriteGCode(w, cmds, opts)
	case JCode:
		return WriteJCode(w, cmds, opts)
	case CBOR:
		return WriteCBOR(w, cmds)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
