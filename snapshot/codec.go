package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported Format or file extension.
var ErrUnknownFormat = errors.New("snapshot: unknown format")

// Format selects the encoding of a State.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format by file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s State, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode reads one State from r in format f. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (State, error) {
	var s State
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return State{}, fmt.Errorf("%w: json: %w", ErrMalformed, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return State{}, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
		}
	default:
		return State{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return s, nil
}

// ReadFile decodes the State stored at path, choosing the format by extension.
func ReadFile(path string) (State, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return State{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer file.Close()

	s, err := Decode(file, f)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// WriteFile encodes s to path, choosing the format by extension. The file is
// written next to its destination and renamed into place.
func WriteFile(path string, s State) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, s, f); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}
