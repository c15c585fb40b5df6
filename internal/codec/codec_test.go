package codec

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ionbench/internal/errors"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ion", FormatIon, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"cbor", FormatCBOR, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatIon, DetectFormat("data.ion"))
	assert.Equal(t, FormatIon, DetectFormat("data.10n"))
	assert.Equal(t, FormatIon, DetectFormat("data"))
	assert.Equal(t, FormatJSON, DetectFormat("DATA.JSON"))
	assert.Equal(t, FormatYAML, DetectFormat("a/b/c.yml"))
	assert.Equal(t, FormatCBOR, DetectFormat("x.cbor"))
}

func TestResolveFormat(t *testing.T) {
	f, err := ResolveFormat("", "data.json")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ResolveFormat("yaml", "data.json")
	assert.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ResolveFormat("protobuf", "data.json")
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestLoad_Ion(t *testing.T) {
	path := writeFile(t, "data.ion", []byte(`{name: "alpha", values: [1, 2, 3]} 42 "hello"`))
	loader, err := NewLoader(FormatIon)
	require.NoError(t, err)

	t.Run("raw values", func(t *testing.T) {
		values, err := Load(path, loader, true)
		require.NoError(t, err)
		require.Len(t, values, 3)

		st, ok := values[0].(map[string]any)
		require.True(t, ok, "struct should decode to a map")
		assert.Len(t, st, 2)
		assert.Len(t, st["values"], 3)
		assert.Equal(t, KindString, Wrap(values[2]).Kind)
	})

	t.Run("wrapped values", func(t *testing.T) {
		values, err := Load(path, loader, false)
		require.NoError(t, err)
		require.Len(t, values, 3)

		st, ok := values[0].(*Value)
		require.True(t, ok)
		assert.Equal(t, KindStruct, st.Kind)
		assert.Contains(t, st.Fields, "name")
		assert.Len(t, st.Fields, 2)
		assert.Equal(t, KindList, st.Fields["values"].Kind)
		assert.Len(t, st.Fields["values"].Elements, 3)

		assert.Equal(t, KindInt, values[1].(*Value).Kind)
		assert.Equal(t, KindString, values[2].(*Value).Kind)
	})
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "data.json", []byte(`{"a": 1.5, "b": [true, null]}
{"a": 2}
`))
	loader, err := NewLoader(FormatJSON)
	require.NoError(t, err)

	values, err := Load(path, loader, false)
	require.NoError(t, err)
	require.Len(t, values, 2)

	first := values[0].(*Value)
	assert.Equal(t, KindFloat, first.Fields["a"].Kind)
	assert.Equal(t, KindBool, first.Fields["b"].Elements[0].Kind)
	assert.Equal(t, KindNull, first.Fields["b"].Elements[1].Kind)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "data.yaml", []byte("name: one\ncount: 3\n---\n- a\n- b\n"))
	loader, err := NewLoader(FormatYAML)
	require.NoError(t, err)

	values, err := Load(path, loader, true)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, map[string]any{"name": "one", "count": 3}, values[0])
	assert.Equal(t, []any{"a", "b"}, values[1])
}

func TestLoad_CBOR(t *testing.T) {
	first, err := cbor.Marshal(map[string]any{"k": "v"})
	require.NoError(t, err)
	second, err := cbor.Marshal([]int{1, 2})
	require.NoError(t, err)
	path := writeFile(t, "data.cbor", append(first, second...))

	loader, err := NewLoader(FormatCBOR)
	require.NoError(t, err)

	values, err := Load(path, loader, false)
	require.NoError(t, err)
	require.Len(t, values, 2)

	st := values[0].(*Value)
	assert.Equal(t, KindStruct, st.Kind)
	assert.Equal(t, "v", st.Fields["k"].Scalar)
	assert.Len(t, values[1].(*Value).Elements, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := &IonLoader{}
	_, err := Load(filepath.Join(t.TempDir(), "missing.ion"), loader, true)
	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_DecodeError(t *testing.T) {
	path := writeFile(t, "bad.json", []byte(`{"a": `))
	_, err := Load(path, &JSONLoader{}, true)
	assert.Error(t, err)
	assert.False(t, apperrors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "failed to decode json")
}
