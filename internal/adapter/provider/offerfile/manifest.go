package offerfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists the offer dump sources a server exposes as providers.
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// Source is one named offer source and the dump files that feed it.
type Source struct {
	// Name is the provider name reported in logs and plan metadata
	Name string `yaml:"name"`

	// Files lists JSON dump paths, relative to the manifest file
	Files []string `yaml:"files"`
}

// LoadManifest reads and validates a YAML manifest. Relative dump paths
// are resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}

	base := filepath.Dir(path)
	seen := make(map[string]bool, len(m.Sources))
	for i, src := range m.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("manifest source %d has no name", i+1)
		}
		if seen[src.Name] {
			return nil, fmt.Errorf("manifest source %q is listed twice", src.Name)
		}
		seen[src.Name] = true

		if len(src.Files) == 0 {
			return nil, fmt.Errorf("manifest source %q lists no files", src.Name)
		}
		for j, f := range src.Files {
			if f == "" {
				return nil, fmt.Errorf("manifest source %q has an empty file path", src.Name)
			}
			if !filepath.IsAbs(f) {
				m.Sources[i].Files[j] = filepath.Join(base, f)
			}
		}
	}

	return &m, nil
}

// LoadAdapters builds one Adapter per manifest source, in manifest order.
func LoadAdapters(path string) ([]*Adapter, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	adapters := make([]*Adapter, 0, len(m.Sources))
	for _, src := range m.Sources {
		adapters = append(adapters, NewAdapter(src.Name, src.Files...))
	}
	return adapters, nil
}
