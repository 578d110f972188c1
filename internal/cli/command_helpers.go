package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/EstruturaDados/free-fire/pkg/files"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/models"
)

// CommandContext carries the resolved settings and logger shared by commands
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	Logger       *zap.Logger
}

// NewCommandContext creates a new command context
func NewCommandContext(settingsPath string, logger *zap.Logger) *CommandContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandContext{
		SettingsPath: settingsPath,
		Logger:       logger,
	}
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings(c.SettingsPath)
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// NewInventory creates an empty inventory bounded by the configured capacity
func (c *CommandContext) NewInventory() *inventory.Inventory {
	settings := c.LoadSettingsWithDefault()
	return inventory.New(
		inventory.WithCapacity(settings.Inventory.Capacity),
		inventory.WithLogger(c.Logger),
	)
}

// SeedInventory creates an inventory and inserts every component from the seed file
func (c *CommandContext) SeedInventory(path string) (*inventory.Inventory, error) {
	inv := c.NewInventory()
	if path == "" {
		return inv, nil
	}

	components, err := files.LoadComponents(path)
	if err != nil {
		return nil, err
	}

	for i, comp := range components {
		if err := inv.Insert(comp); err != nil {
			if errors.Is(err, inventory.ErrCapacityExceeded) {
				return nil, fmt.Errorf("seed file %s holds %d components, capacity is %d: %w",
					path, len(components), inv.Capacity(), err)
			}
			return nil, fmt.Errorf("component #%d in %s: %w", i+1, path, err)
		}
	}

	c.Logger.Debug("Inventory seeded", zap.String("path", path), zap.Int("count", inv.Len()))
	return inv, nil
}

// Precision returns the configured number of decimals for elapsed seconds
func (c *CommandContext) Precision() int {
	return c.LoadSettingsWithDefault().Output.TimingPrecision
}
