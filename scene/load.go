package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode parses a scene description from yaml bytes.
func Decode(data []byte) (*SceneDescription, error) {
	var desc SceneDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &desc, nil
}

// LoadFile reads and parses a scene description from disk.
func LoadFile(path string) (*SceneDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	desc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return desc, nil
}
