package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-repository rules file, relative to the repo root.
const ProjectFile = ".commitguard.yaml"

// projectConfig is the .commitguard.yaml file structure.
type projectConfig struct {
	Rules Rules `yaml:"rules"`
}

// LoadProject reads ProjectFile under root. A missing file yields empty
// Rules and a nil error.
func LoadProject(root string) (Rules, error) {
	path := filepath.Join(root, ProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Rules{}, nil
		}
		return Rules{}, fmt.Errorf("reading %s: %w", ProjectFile, err)
	}
	var pc projectConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return Rules{}, fmt.Errorf("parsing %s: %w", ProjectFile, err)
	}
	return pc.Rules, nil
}
