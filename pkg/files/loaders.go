package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

// SeedFile is the on-disk shape of a component list used to seed a run
type SeedFile struct {
	Components []models.Component `yaml:"components"`
}

// LoadComponents reads and validates a seed file. The file may either hold
// a top-level list of components or a "components:" key.
func LoadComponents(path string) ([]models.Component, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read components %s: %w", path, err)
	}

	components, err := parseComponents(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse components YAML %s: %w", path, err)
	}

	for i, c := range components {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("component #%d in %s: %w", i+1, path, err)
		}
	}

	return components, nil
}

func parseComponents(content []byte) ([]models.Component, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []models.Component
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var seed SeedFile
	if err := root.Decode(&seed); err != nil {
		return nil, err
	}
	return seed.Components, nil
}

// WriteComponents writes components as a seed file readable by LoadComponents
func WriteComponents(path string, components []models.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for components: %w", err)
	}

	content, err := yaml.Marshal(SeedFile{Components: components})
	if err != nil {
		return fmt.Errorf("failed to marshal components to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write components %s: %w", path, err)
	}

	return nil
}
