package inventory

import "errors"

// Result states reported by inventory operations. None of them are fatal;
// the inventory is left unchanged whenever one is returned.
var (
	// ErrCapacityExceeded is returned when inserting into a full inventory.
	ErrCapacityExceeded = errors.New("inventory capacity reached")

	// ErrNotFound is returned when no component has the requested name.
	ErrNotFound = errors.New("component not found")

	// ErrNotNameSorted is returned when a binary search is requested while
	// the inventory is not ordered by name.
	ErrNotNameSorted = errors.New("binary search requires the inventory to be sorted by name")

	// ErrTooFewToSort is returned when sorting fewer than two components.
	ErrTooFewToSort = errors.New("too few components to sort")

	// ErrEmpty is returned when searching an empty inventory.
	ErrEmpty = errors.New("inventory is empty")
)
