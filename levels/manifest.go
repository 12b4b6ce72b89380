package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the ordered level list from levels.yaml.
type Manifest struct {
	MenuMusic string  `yaml:"menu_music"`
	Levels    []Entry `yaml:"levels"`
}

// Entry describes one level: its display name, maze file, and the music
// track requested while it plays.
type Entry struct {
	Name  string `yaml:"name"`
	Maze  string `yaml:"maze"`
	Music string `yaml:"music"`
}

// LoadManifest reads levels.yaml (disk-first, then embedded).
func LoadManifest() (*Manifest, error) {
	data, err := Load("levels.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: load manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: unmarshal manifest: %w", err)
	}
	if len(m.Levels) == 0 {
		return nil, fmt.Errorf("levels: manifest lists no levels")
	}
	return &m, nil
}
