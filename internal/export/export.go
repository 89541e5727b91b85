// Package export encodes taskdeck data structures for output in multiple
// formats. It backs the --format flag on commands that print manifests or
// task lists for consumption by other tools.
package export

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat indicates an unrecognized format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(name), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q (want json, yaml, or toml)", name)
	}
}

// Marshal encodes v in the given format. JSON output is indented with two
// spaces and ends with a newline, matching the on-disk file conventions.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling json")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling yaml")
		}
		return out, nil
	case FormatTOML:
		out, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling toml")
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}
