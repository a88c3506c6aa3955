package export

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"turtlecode/turtle"
)

// cborCommand is encoded as the two-element array [kind, arg].
type cborCommand struct {
	_    struct{} `cbor:",toarray"`
	Kind uint8
	Arg  int
}

// WriteCBOR writes cmds as a deterministic CBOR array of [kind, arg] pairs.
func WriteCBOR(w io.Writer, cmds []turtle.Command) error {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		// Valid by construction.
		panic(err)
	}
	arr := make([]cborCommand, len(cmds))
	for i, c := range cmds {
		arr[i] = cborCommand{Kind: uint8(c.Kind), Arg: c.Arg}
	}
	b, err := enc.Marshal(arr)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadCBOR decodes the output of WriteCBOR.
func ReadCBOR(r io.Reader) ([]turtle.Command, error) {
	var arr []cborCommand
	if err := cbor.NewDecoder(r).Decode(&arr); err != nil {
		return nil, err
	}
	cmds := make([]turtle.Command, len(arr))
	for i, c := range arr {
		k := turtle.Kind(c.Kind)
		if k < turtle.Forward || k > turtle.PenUp {
			return nil, fmt.Errorf("%w: kind %d at %d", ErrBadToken, c.Kind, i)
		}
		cmds[i] = turtle.Command{Kind: k, Arg: c.Arg}
	}
	return cmds, nil
}
