package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShapeSpec describes one shape in a scene file, either an item or a
// container frame override.
type ShapeSpec struct {
	Kind   string `yaml:"kind"`
	Size   int    `yaml:"size"`
	Border *int   `yaml:"border"`
	Color  string `yaml:"color"`
}

// ContainerSpec describes one container and its items.
type ContainerSpec struct {
	Kind     string      `yaml:"kind"` // row | column | grid
	Width    int         `yaml:"width"`
	Height   int         `yaml:"height"`
	X        int         `yaml:"x"`
	Y        int         `yaml:"y"`
	Frame    *ShapeSpec  `yaml:"frame"`
	Align    string      `yaml:"align"`
	Fill     string      `yaml:"fill"`
	Overflow string      `yaml:"overflow"`
	Padding  *int        `yaml:"padding"`
	Spacing  *int        `yaml:"spacing"`
	Items    []ShapeSpec `yaml:"items"`
}

// Spec is a whole scene document.
type Spec struct {
	Name       string          `yaml:"name"`
	Containers []ContainerSpec `yaml:"containers"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scene: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scene: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadScene(filename string) (*Spec, error) {
	spec, err := LoadSpec[Spec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
