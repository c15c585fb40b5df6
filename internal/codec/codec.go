// Package codec decodes serialized data files into Go values for the read benchmarks.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "ionbench/internal/errors"
)

// Format identifies the wire format of an input file.
type Format string

const (
	FormatIon  Format = "ion"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatIon, FormatJSON, FormatYAML, FormatCBOR}

// Loader decodes every top-level value in a stream.
type Loader interface {
	Format() Format
	Decode(r io.Reader) ([]any, error)
}

// ParseFormat converts a user supplied format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", apperrors.NewInvalidArgumentError("--format", "unknown format %q (supported: %s)", s, formatList())
}

// DetectFormat guesses the format from the file extension and falls back to Ion.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".cbor":
		return FormatCBOR
	default:
		// .ion, .10n and anything unknown
		return FormatIon
	}
}

// ResolveFormat returns the explicit format if one was given, otherwise the detected one.
func ResolveFormat(explicit, path string) (Format, error) {
	if explicit == "" {
		return DetectFormat(path), nil
	}
	return ParseFormat(explicit)
}

// NewLoader returns the Loader for a format.
func NewLoader(f Format) (Loader, error) {
	switch f {
	case FormatIon:
		return &IonLoader{}, nil
	case FormatJSON:
		return &JSONLoader{}, nil
	case FormatYAML:
		return &YAMLLoader{}, nil
	case FormatCBOR:
		return &CBORLoader{}, nil
	default:
		return nil, apperrors.NewInvalidArgumentError("--format", "unknown format %q (supported: %s)", f, formatList())
	}
}

// Load reads the file at path and decodes it with l. Unless rawValues is set,
// every decoded value is wrapped into a *Value tree before returning.
func Load(path string, l Loader, rawValues bool) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(path, err)
	}
	defer f.Close()

	values, err := l.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s file %s: %w", l.Format(), path, err)
	}
	if rawValues {
		return values, nil
	}

	wrapped := make([]any, len(values))
	for i, v := range values {
		wrapped[i] = Wrap(v)
	}
	return wrapped, nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
