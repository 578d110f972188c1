package examples

import (
	"fmt"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

func getTowerExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Escape Tower",
			Description: "Parts needed to assemble the escape tower, in the order they were collected",
			Components: []models.Component{
				{Name: "chip central", Type: "controle", Priority: 1},
				{Name: "propulsor", Type: "propulsao", Priority: 2},
				{Name: "painel solar", Type: "suporte", Priority: 5},
				{Name: "antena", Type: "comunicacao", Priority: 4},
				{Name: "bateria", Type: "suporte", Priority: 3},
				{Name: "leme", Type: "controle", Priority: 6},
				{Name: "Estabilizador", Type: "suporte", Priority: 7},
				{Name: "motor auxiliar", Type: "propulsao", Priority: 8},
			},
		},
	}
}

// getSortedExamples returns sets already in name order; bubble sort needs n-1 comparisons
func getSortedExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Already Sorted",
			Description: "Twenty parts already in name order (best case for bubble and insertion sort)",
			Components:  numbered(models.MaxComponents, false),
		},
	}
}

// getWorstCaseExamples returns sets in reverse name order
func getWorstCaseExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Reverse Order",
			Description: "Twenty parts in reverse name and type order (worst case for bubble and insertion sort)",
			Components:  numbered(models.MaxComponents, true),
		},
	}
}

func numbered(n int, reverse bool) []models.Component {
	items := make([]models.Component, n)
	for i := range items {
		k := i
		if reverse {
			k = n - 1 - i
		}
		items[i] = models.Component{
			Name:     fmt.Sprintf("peca-%02d", k+1),
			Type:     fmt.Sprintf("tipo-%02d", k+1),
			Priority: k%models.MaxPriority + 1,
		}
	}
	return items
}
