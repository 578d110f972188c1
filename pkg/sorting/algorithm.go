package sorting

import (
	"fmt"
	"strings"
)

// Key identifies the component field a sort orders by
type Key string

const (
	KeyName     Key = "name"
	KeyType     Key = "type"
	KeyPriority Key = "priority"
)

// Algorithm pairs a sort with its display label and key
type Algorithm struct {
	Name string // e.g. "Bubble Sort"
	Key  Key
	Sort Func
}

// Label returns a human readable description, e.g. "Bubble Sort (by name)"
func (a Algorithm) Label() string {
	return fmt.Sprintf("%s (by %s)", a.Name, a.Key)
}

// MenuLabel returns the menu entry text, e.g. "Sort by NAME (bubble sort)"
func (a Algorithm) MenuLabel() string {
	return fmt.Sprintf("Sort by %s (%s)", strings.ToUpper(string(a.Key)), strings.ToLower(a.Name))
}

var (
	ByName     = Algorithm{Name: "Bubble Sort", Key: KeyName, Sort: BubbleByName}
	ByType     = Algorithm{Name: "Insertion Sort", Key: KeyType, Sort: InsertionByType}
	ByPriority = Algorithm{Name: "Selection Sort", Key: KeyPriority, Sort: SelectionByPriority}
)

// Algorithms lists the available sorts in menu order (options 3, 4 and 5)
func Algorithms() []Algorithm {
	return []Algorithm{ByName, ByType, ByPriority}
}

// Lookup resolves a key or algorithm name to its Algorithm.
// Accepts "name", "type", "priority" and the algorithm names ("bubble", "insertion", "selection").
func Lookup(key string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "name", "names", "bubble":
		return ByName, nil
	case "type", "types", "insertion":
		return ByType, nil
	case "priority", "priorities", "selection":
		return ByPriority, nil
	default:
		return Algorithm{}, fmt.Errorf("unknown sort key: %s (must be: name, type, or priority)", key)
	}
}
