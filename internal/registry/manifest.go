package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// manifestFile is the on-disk shape of the YAML command manifest:
// documentation and parameter metadata for builtins, kept separate
// from their Go handlers so it can be translated or extended without
// touching code.
type manifestFile struct {
	Commands []Descriptor `yaml:"commands"`
}

// ReadManifest parses a YAML manifest from r into descriptor entries
// suitable for Registry.LoadManifest.
func ReadManifest(r io.Reader) ([]Descriptor, error) {
	var mf manifestFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("registry: decode manifest: %w", err)
	}
	return mf.Commands, nil
}
