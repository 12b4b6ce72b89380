package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals a yaml prefab into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type BillboardSpec struct {
	Kind  string  `yaml:"kind"`
	Scale float64 `yaml:"scale"`
}

type PlayerSpec struct {
	Name             string      `yaml:"name"`
	MoveSpeed        float64     `yaml:"move_speed"`
	TurnSpeed        float64     `yaml:"turn_speed"`
	MouseSensitivity float64     `yaml:"mouse_sensitivity"`
	FOVDegrees       float64     `yaml:"fov_degrees"`
	Audio            []AudioSpec `yaml:"audio"`
}

type ChaserSpec struct {
	Name      string        `yaml:"name"`
	Speed     float64       `yaml:"speed"`
	Script    string        `yaml:"script"`
	Billboard BillboardSpec `yaml:"billboard"`
	Audio     []AudioSpec   `yaml:"audio"`
}

type CoinSpec struct {
	Name      string        `yaml:"name"`
	Radius    float64       `yaml:"radius"`
	Billboard BillboardSpec `yaml:"billboard"`
	Audio     []AudioSpec   `yaml:"audio"`
}

type MusicPlayerSpec struct {
	Name          string             `yaml:"name"`
	FadeOutFrames int                `yaml:"fade_out_frames"`
	TrackVolumes  map[string]float64 `yaml:"track_volumes"`
}
