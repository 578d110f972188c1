// Package sorting implements the three textbook in-place sorts used to
// organize the inventory. Each sort counts the key comparisons it performs
// so the runs can be compared side by side.
package sorting

import "github.com/EstruturaDados/free-fire/pkg/models"

// Func is the uniform invocation contract shared by every sort: items are
// reordered in place and the number of key comparisons is written to
// comparisons.
type Func func(items []models.Component, comparisons *int64)

// BubbleByName orders items by name (byte-wise, case-sensitive) using
// bubble sort. A pass without swaps stops the algorithm.
func BubbleByName(items []models.Component, comparisons *int64) {
	*comparisons = 0
	n := len(items)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			*comparisons++
			if items[j].Name > items[j+1].Name {
				items[j], items[j+1] = items[j+1], items[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

// InsertionByType orders items by type using insertion sort.
// Every examined shift candidate counts, including the one that stops the shift.
func InsertionByType(items []models.Component, comparisons *int64) {
	*comparisons = 0
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 {
			*comparisons++
			if items[j].Type <= key.Type {
				break
			}
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

// SelectionByPriority orders items by ascending priority using selection
// sort. On ties the lowest-index minimum wins.
func SelectionByPriority(items []models.Component, comparisons *int64) {
	*comparisons = 0
	n := len(items)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			*comparisons++
			if items[j].Priority < items[minIdx].Priority {
				minIdx = j
			}
		}
		if minIdx != i {
			items[i], items[minIdx] = items[minIdx], items[i]
		}
	}
}
