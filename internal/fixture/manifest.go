package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the conventional manifest name inside a fixture
// directory.
const ManifestFileName = "index.yaml"

// Manifest indexes the fixture files produced by one generation run.
// It is written next to the .shlo files so a run can be located and
// reproduced from its seed.
type Manifest struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name,omitempty"`
	CreatedAt time.Time      `yaml:"created_at"`
	Seed      int64          `yaml:"seed"`
	Cases     []ManifestCase `yaml:"cases"`
}

// ManifestCase points at the fixture file holding one test case.
type ManifestCase struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Tensors []string `yaml:"tensors,omitempty"`
}

// NewManifest returns a manifest with a fresh ID for a run with the
// given seed.
func NewManifest(name string, seed int64) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
	}
}

// AddCase appends a case entry.
func (m *Manifest) AddCase(name, file string, tensors []string) {
	m.Cases = append(m.Cases, ManifestCase{Name: name, File: file, Tensors: tensors})
}

// Case looks up a case entry by name.
func (m *Manifest) Case(name string) (*ManifestCase, bool) {
	for i := range m.Cases {
		if m.Cases[i].Name == name {
			return &m.Cases[i], true
		}
	}
	return nil, false
}

// Save writes the manifest as YAML to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: manifests are not secrets
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	//nolint:gosec // G304: manifest path comes from the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.ID != "" {
		if _, err := uuid.Parse(m.ID); err != nil {
			return nil, fmt.Errorf("invalid manifest id %q: %w", m.ID, err)
		}
	}
	return &m, nil
}
