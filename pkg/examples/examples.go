package examples

import (
	"fmt"
	"os"

	"github.com/EstruturaDados/free-fire/pkg/files"
	"github.com/EstruturaDados/free-fire/pkg/models"
)

// ExampleSet represents a named sample inventory
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Components  []models.Component
}

// Categories lists the valid category names, "all" last
func Categories() []string {
	return []string{"tower", "sorted", "worst-case", "all"}
}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "tower":
		return withCategory("tower", getTowerExamples())
	case "sorted":
		return withCategory("sorted", getSortedExamples())
	case "worst-case":
		return withCategory("worst-case", getWorstCaseExamples())
	case "all":
		var all []ExampleSet
		all = append(all, withCategory("tower", getTowerExamples())...)
		all = append(all, withCategory("sorted", getSortedExamples())...)
		all = append(all, withCategory("worst-case", getWorstCaseExamples())...)
		return all
	default:
		return []ExampleSet{}
	}
}

// Find returns the first example set in category, for preloading an inventory
func Find(category string) (ExampleSet, error) {
	sets := GetExamples(category)
	if len(sets) == 0 || category == "all" {
		return ExampleSet{}, fmt.Errorf("unknown sample '%s' (must be: tower, sorted, or worst-case)", category)
	}
	return sets[0], nil
}

// InstallSet writes the set's components as a seed file at path
func InstallSet(set ExampleSet, path string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, fmt.Errorf("seed file already exists at %s", path)
		}
	}

	if err := files.WriteComponents(path, set.Components); err != nil {
		return false, err
	}

	return true, nil
}

func withCategory(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}
