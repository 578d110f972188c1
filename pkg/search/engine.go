// Package search locates components by name.
package search

import "github.com/EstruturaDados/free-fire/pkg/models"

// NotFound is returned as the index when no component matches
const NotFound = -1

// BinaryByName bisects items looking for target and reports the number of
// name comparisons made. items must already be ordered by name (byte-wise,
// ascending); this is not re-checked. When several components share the
// name, the index returned is whichever one the bisection lands on.
func BinaryByName(items []models.Component, target string) (int, int64) {
	var comparisons int64
	low, high := 0, len(items)-1
	for low <= high {
		mid := low + (high-low)/2
		comparisons++
		switch name := items[mid].Name; {
		case target == name:
			return mid, comparisons
		case target < name:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return NotFound, comparisons
}

// LinearByName returns the index of the first component named exactly name,
// or NotFound.
func LinearByName(items []models.Component, name string) int {
	for i, c := range items {
		if c.Name == name {
			return i
		}
	}
	return NotFound
}
