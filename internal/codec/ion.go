package codec

import (
	"errors"
	"io"

	"github.com/amzn/ion-go/ion"
)

// IonLoader decodes text or binary Ion with ion-go's dynamic Decoder.
type IonLoader struct{}

func (l *IonLoader) Format() Format { return FormatIon }

func (l *IonLoader) Decode(r io.Reader) ([]any, error) {
	dec := ion.NewDecoder(ion.NewReader(r))

	var values []any
	for {
		v, err := dec.Decode()
		if errors.Is(err, ion.ErrNoInput) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}
