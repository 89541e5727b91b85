package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Count int    `json:"count" toml:"count" yaml:"count"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestMarshal_JSON(t *testing.T) {
	out, err := Marshal(sample{Name: "a", Count: 2}, FormatJSON)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"name": "a"`)
	assert.True(t, strings.HasSuffix(s, "\n"), "json output must end with a newline")
}

func TestMarshal_YAML(t *testing.T) {
	out, err := Marshal(sample{Name: "a", Count: 2}, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: a")
}

func TestMarshal_TOML(t *testing.T) {
	out, err := Marshal(sample{Name: "a", Count: 2}, FormatTOML)
	require.NoError(t, err)

	assert.Contains(t, string(out), `name = 'a'`)
	assert.Contains(t, string(out), "count = 2")
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	_, err := Marshal(sample{}, Format("csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
