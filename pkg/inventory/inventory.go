// Package inventory holds the bounded component collection and tracks
// whether its current order allows a binary search by name.
package inventory

import (
	"go.uber.org/zap"

	"github.com/EstruturaDados/free-fire/pkg/models"
	"github.com/EstruturaDados/free-fire/pkg/search"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

// Report describes a completed sort
type Report struct {
	Algorithm   string      `json:"algorithm" yaml:"algorithm"`
	Key         sorting.Key `json:"key" yaml:"key"`
	Count       int         `json:"count" yaml:"count"`
	Comparisons int64       `json:"comparisons" yaml:"comparisons"`
	Seconds     float64     `json:"seconds" yaml:"seconds"`
}

// SearchResult describes a completed binary search.
// A missing component is Found == false, not an error.
type SearchResult struct {
	Target      string            `json:"target" yaml:"target"`
	Found       bool              `json:"found" yaml:"found"`
	Index       int               `json:"index" yaml:"index"`
	Component   *models.Component `json:"component,omitempty" yaml:"component,omitempty"`
	Comparisons int64             `json:"comparisons" yaml:"comparisons"`
}

// Inventory is the mutable component collection. It is owned by a single
// caller and is not safe for concurrent use.
type Inventory struct {
	items        []models.Component
	capacity     int
	isNameSorted bool
	logger       *zap.Logger
}

// Option configures an Inventory
type Option func(*Inventory)

// WithCapacity bounds the collection. Values outside [1, models.MaxComponents] are ignored.
func WithCapacity(n int) Option {
	return func(inv *Inventory) {
		if n >= 1 && n <= models.MaxComponents {
			inv.capacity = n
		}
	}
}

// WithLogger sets the logger used to trace operations
func WithLogger(logger *zap.Logger) Option {
	return func(inv *Inventory) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// New creates an empty inventory that is not name-sorted
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		capacity: models.MaxComponents,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	inv.items = make([]models.Component, 0, inv.capacity)
	return inv
}

// Len returns the number of stored components
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Capacity returns the maximum number of components
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// IsNameSorted reports whether the last structural operation was a name sort
func (inv *Inventory) IsNameSorted() bool {
	return inv.isNameSorted
}

// List returns a copy of the components in their current order
func (inv *Inventory) List() []models.Component {
	out := make([]models.Component, len(inv.items))
	copy(out, inv.items)
	return out
}

// Insert validates c and appends it
func (inv *Inventory) Insert(c models.Component) error {
	if len(inv.items) >= inv.capacity {
		inv.logger.Debug("Insert rejected",
			zap.String("name", c.Name),
			zap.Int("capacity", inv.capacity))
		return ErrCapacityExceeded
	}
	if err := c.Validate(); err != nil {
		return err
	}

	inv.items = append(inv.items, c)
	inv.isNameSorted = false
	inv.logger.Debug("Component inserted",
		zap.String("name", c.Name),
		zap.String("type", c.Type),
		zap.Int("priority", c.Priority),
		zap.Int("count", len(inv.items)))
	return nil
}

// RemoveByName removes the first component named exactly name, keeping the
// relative order of the rest.
func (inv *Inventory) RemoveByName(name string) (models.Component, error) {
	idx := search.LinearByName(inv.items, name)
	if idx == search.NotFound {
		inv.logger.Debug("Remove target not found", zap.String("name", name))
		return models.Component{}, ErrNotFound
	}

	removed := inv.items[idx]
	copy(inv.items[idx:], inv.items[idx+1:])
	inv.items[len(inv.items)-1] = models.Component{}
	inv.items = inv.items[:len(inv.items)-1]
	inv.isNameSorted = false
	inv.logger.Debug("Component removed",
		zap.String("name", name),
		zap.Int("index", idx),
		zap.Int("count", len(inv.items)))
	return removed, nil
}

// Clear drops every component
func (inv *Inventory) Clear() {
	for i := range inv.items {
		inv.items[i] = models.Component{}
	}
	inv.items = inv.items[:0]
	inv.isNameSorted = false
	inv.logger.Debug("Inventory cleared")
}

// SortByName orders the inventory by name with bubble sort
func (inv *Inventory) SortByName() (Report, error) {
	return inv.Sort(sorting.ByName)
}

// SortByType orders the inventory by type with insertion sort
func (inv *Inventory) SortByType() (Report, error) {
	return inv.Sort(sorting.ByType)
}

// SortByPriority orders the inventory by priority with selection sort
func (inv *Inventory) SortByPriority() (Report, error) {
	return inv.Sort(sorting.ByPriority)
}

// Sort runs alg over the inventory and times it. With fewer than two
// components nothing happens and ErrTooFewToSort is returned.
func (inv *Inventory) Sort(alg sorting.Algorithm) (Report, error) {
	if len(inv.items) <= 1 {
		return Report{}, ErrTooFewToSort
	}

	var comparisons int64
	secs := sorting.Measure(alg.Sort, inv.items, &comparisons)
	inv.isNameSorted = alg.Key == sorting.KeyName

	report := Report{
		Algorithm:   alg.Name,
		Key:         alg.Key,
		Count:       len(inv.items),
		Comparisons: comparisons,
		Seconds:     secs,
	}
	inv.logger.Info("Inventory sorted",
		zap.String("algorithm", alg.Name),
		zap.String("key", string(alg.Key)),
		zap.Int("count", report.Count),
		zap.Int64("comparisons", comparisons),
		zap.Float64("seconds", secs),
		zap.Bool("name_sorted", inv.isNameSorted))
	return report, nil
}

// SearchByName binary-searches the inventory for target. It refuses with
// ErrNotNameSorted unless the inventory is currently ordered by name.
func (inv *Inventory) SearchByName(target string) (SearchResult, error) {
	if !inv.isNameSorted {
		inv.logger.Debug("Search refused, inventory not sorted by name", zap.String("target", target))
		return SearchResult{}, ErrNotNameSorted
	}
	if len(inv.items) == 0 {
		return SearchResult{}, ErrEmpty
	}

	idx, comparisons := search.BinaryByName(inv.items, target)
	result := SearchResult{
		Target:      target,
		Index:       idx,
		Comparisons: comparisons,
	}
	if idx != search.NotFound {
		found := inv.items[idx]
		result.Found = true
		result.Component = &found
	}
	inv.logger.Info("Binary search finished",
		zap.String("target", target),
		zap.Bool("found", result.Found),
		zap.Int("index", idx),
		zap.Int64("comparisons", comparisons))
	return result, nil
}
