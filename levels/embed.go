package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.txt levels.yaml
var LevelsFS embed.FS

// Load reads a level file by name, preferring an on-disk levels/ directory so
// mazes can be edited without rebuilding, then falling back to the embedded
// copy.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// LoadMaze loads and parses a maze file by name.
func LoadMaze(name string) (*Maze, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	m, err := ParseMaze(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return m, nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "levels/") {
		return strings.TrimPrefix(s, "levels/")
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
