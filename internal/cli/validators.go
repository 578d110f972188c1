package cli

import (
	"fmt"
	"slices"

	"github.com/EstruturaDados/free-fire/pkg/models"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

// ValidateComponentName validates a component name
func ValidateComponentName(name string) error {
	return models.ValidateName(name)
}

// ValidateComponentType validates a component type
func ValidateComponentType(t string) error {
	return models.ValidateType(t)
}

// ValidatePriority validates a priority value
func ValidatePriority(p int) error {
	return models.ValidatePriority(p)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if slices.Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSortKey validates a sort key argument
func ValidateSortKey(key string) error {
	_, err := sorting.Lookup(key)
	return err
}
