package usertimer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a descriptor file encoding
type Format string

const (
	// FormatYAML is a YAML descriptor
	FormatYAML Format = "yaml"
	// FormatTOML is a TOML descriptor
	FormatTOML Format = "toml"
	// FormatJSON is a JSON descriptor
	FormatJSON Format = "json"
)

// FormatForPath picks a Format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown descriptor extension %q", ErrConfig, filepath.Ext(path))
	}
}

// LoadDescriptor reads a descriptor file, choosing the decoder by extension
func LoadDescriptor(path string) (Descriptor, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Descriptor{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("reading descriptor: %w", err)
	}

	return ParseDescriptor(data, format)
}

// ParseDescriptor decodes a descriptor. Unknown keys are rejected so that a
// misspelled flag does not silently fall back to its default.
func ParseDescriptor(data []byte, format Format) (Descriptor, error) {
	var d Descriptor

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return Descriptor{}, fmt.Errorf("%w: parsing yaml: %w", ErrConfig, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w: parsing toml: %w", ErrConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Descriptor{}, fmt.Errorf("%w: unknown toml keys %v", ErrConfig, undecoded)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return Descriptor{}, fmt.Errorf("%w: parsing json: %w", ErrConfig, err)
		}
	default:
		return Descriptor{}, fmt.Errorf("%w: unsupported format %q", ErrConfig, format)
	}

	return d, nil
}
