package models

import (
	"errors"
	"fmt"
	"strings"
)

// Inventory limits
const (
	MaxComponents = 20
	MaxNameLength = 29
	MaxTypeLength = 19
	MinPriority   = 1
	MaxPriority   = 10
)

// Component validation errors
var (
	ErrEmptyName       = errors.New("component name cannot be empty")
	ErrNameTooLong     = fmt.Errorf("component name cannot exceed %d bytes", MaxNameLength)
	ErrEmptyType       = errors.New("component type cannot be empty")
	ErrTypeTooLong     = fmt.Errorf("component type cannot exceed %d bytes", MaxTypeLength)
	ErrInvalidPriority = fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
)

// Component is a single escape-tower part tracked by the inventory.
// Priority 1 is the most urgent.
type Component struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Priority int    `yaml:"priority" json:"priority"`
}

// ValidationError reports which field of a component failed validation
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}

// Validate checks the record against the inventory limits.
// Lengths are measured in bytes, matching the byte-wise ordering used by the sorts.
func (c Component) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return newValidationError("name", err)
	}
	if err := ValidateType(c.Type); err != nil {
		return newValidationError("type", err)
	}
	if err := ValidatePriority(c.Priority); err != nil {
		return newValidationError("priority", err)
	}
	return nil
}

// ValidateName checks a component name
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// ValidateType checks a component type
func ValidateType(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrEmptyType
	}
	if len(t) > MaxTypeLength {
		return ErrTypeTooLong
	}
	return nil
}

// ValidatePriority checks that p is within [MinPriority, MaxPriority]
func ValidatePriority(p int) error {
	if p < MinPriority || p > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

func (c Component) String() string {
	return fmt.Sprintf("%s (%s, priority %d)", c.Name, c.Type, c.Priority)
}
