package codec

import (
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBORLoader decodes a sequence of CBOR data items.
type CBORLoader struct{}

func (l *CBORLoader) Format() Format { return FormatCBOR }

func (l *CBORLoader) Decode(r io.Reader) ([]any, error) {
	dec := cbor.NewDecoder(r)

	var values []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}
