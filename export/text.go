package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"turtlecode/turtle"
)

// WriteLegacy writes one double-quoted token per line with a trailing
// comma, ready to paste into a C array initializer:
//
//	"paintON",
//	"F 20",
func WriteLegacy(w io.Writer, cmds []turtle.Command) error {
	bw := bufio.NewWriter(w)
	for _, c := range cmds {
		if _, err := fmt.Fprintf(bw, "%q,\n", Token(c)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLegacy parses the output of WriteLegacy. Blank lines are ignored.
func ReadLegacy(r io.Reader) ([]turtle.Command, error) {
	var cmds []turtle.Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		s = strings.TrimSuffix(s, ",")
		if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
			return nil, fmt.Errorf("line %d: %w: %s", line, ErrBadToken, s)
		}
		c, err := ParseToken(s[1 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, sc.Err()
}

// WriteLines writes bare tokens, one per line.
func WriteLines(w io.Writer, cmds []turtle.Command) error {
	bw := bufio.NewWriter(w)
	for _, c := range cmds {
		bw.WriteString(Token(c))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
