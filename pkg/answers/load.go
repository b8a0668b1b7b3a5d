// SPDX-License-Identifier: MPL-2.0

package answers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for answer files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported answers file format (want .toml, .yaml or .yml)")

// Read reads an answers file and decodes it according to its extension,
// without validating it. Unknown keys are rejected so typos surface early.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read answers file: %w", err)
	}

	rec, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Decode parses answers in the format named by ext (".toml", ".yaml" or ".yml").
// It does not validate the record.
func Decode(data []byte, ext string) (Record, error) {
	var rec Record
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("invalid TOML: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return Record{}, ErrUnsupportedFormat
	}
	return rec, nil
}
