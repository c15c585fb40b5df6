package codec

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes every document of a multi-document YAML stream.
type YAMLLoader struct{}

func (l *YAMLLoader) Format() Format { return FormatYAML }

func (l *YAMLLoader) Decode(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

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
