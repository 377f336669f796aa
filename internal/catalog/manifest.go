package catalog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the structured listing of every logical asset name, grouped
// by family, plus the declaration that no externally licensed assets are
// included.
type Manifest struct {
	Version   int              `yaml:"version"`
	Generated bool             `yaml:"generated"`
	Textures  ManifestTextures `yaml:"textures"`
	Licenses  []string         `yaml:"licenses"`
}

// ManifestTextures groups logical asset names by family.
type ManifestTextures struct {
	Icons  ManifestIcons `yaml:"icons"`
	UI     []string      `yaml:"ui"`
	World  []string      `yaml:"world"`
	Glyphs []string      `yaml:"glyphs"`
}

// ManifestIcons splits the icon families.
type ManifestIcons struct {
	Investments []string `yaml:"investments"`
	Agents      []string `yaml:"agents"`
}

const manifestHeader = `# Asset manifest
# Generated by assetforge; all assets are procedurally built.

`

// BuildManifest derives the manifest from catalog entries, listing each
// logical name once in entry order.
func BuildManifest(entries []Entry) *Manifest {
	m := &Manifest{
		Version:   1,
		Generated: true,
		Licenses:  []string{},
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		id := e.Family + "/" + e.Name
		if seen[id] {
			continue
		}
		seen[id] = true
		switch e.Family {
		case FamilyInvestments:
			m.Textures.Icons.Investments = append(m.Textures.Icons.Investments, e.Name)
		case FamilyAgents:
			m.Textures.Icons.Agents = append(m.Textures.Icons.Agents, e.Name)
		case FamilyUI:
			m.Textures.UI = append(m.Textures.UI, e.Name)
		case FamilyWorld:
			m.Textures.World = append(m.Textures.World, e.Name)
		case FamilyGlyphs:
			m.Textures.Glyphs = append(m.Textures.Glyphs, e.Name)
		}
	}
	return m
}

// Encode serializes the manifest as YAML with its header comment.
func (m *Manifest) Encode() ([]byte, error) {
	body, err := yaml.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append([]byte(manifestHeader), body...), nil
}

// WriteFile writes the manifest document to path.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
