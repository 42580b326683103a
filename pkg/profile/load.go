package profile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a profile set from a YAML file and validates it.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profiles %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a YAML profile set. Unknown keys are rejected so typos do not
// silently fall back to zero values.
func Parse(data []byte) (*Set, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Dump writes the set as YAML.
func (s *Set) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	return enc.Close()
}

// LoadOrDefault loads the set at path, or the built-in set when path is empty.
func LoadOrDefault(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
