package codec

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
)

// JSONLoader decodes a stream of concatenated JSON documents.
type JSONLoader struct{}

func (l *JSONLoader) Format() Format { return FormatJSON }

func (l *JSONLoader) Decode(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)

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
