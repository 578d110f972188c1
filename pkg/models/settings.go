package models

// Settings represents the application configuration
type Settings struct {
	Inventory InventorySettings `yaml:"inventory"`
	Output    OutputSettings    `yaml:"output"`
	UI        UISettings        `yaml:"ui"`
	Log       LogSettings       `yaml:"log"`
}

// InventorySettings controls the collection bounds
type InventorySettings struct {
	Capacity int `yaml:"capacity"`
}

// OutputSettings controls how results are printed
type OutputSettings struct {
	Format          string `yaml:"format"`           // "text", "json" or "yaml"
	TimingPrecision int    `yaml:"timing_precision"` // decimals for elapsed seconds
}

// UISettings controls UI preferences
type UISettings struct {
	NoColor bool `yaml:"no_color"`
}

// LogSettings controls the structured logger
type LogSettings struct {
	Level string `yaml:"level"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Inventory: InventorySettings{
			Capacity: MaxComponents,
		},
		Output: OutputSettings{
			Format:          "text",
			TimingPrecision: 6,
		},
		UI: UISettings{
			NoColor: false,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// Normalize fills zero values with defaults and clamps out-of-range ones
func (s *Settings) Normalize() {
	defaults := DefaultSettings()
	if s.Inventory.Capacity <= 0 || s.Inventory.Capacity > MaxComponents {
		s.Inventory.Capacity = defaults.Inventory.Capacity
	}
	if s.Output.Format == "" {
		s.Output.Format = defaults.Output.Format
	}
	if s.Output.TimingPrecision <= 0 || s.Output.TimingPrecision > 9 {
		s.Output.TimingPrecision = defaults.Output.TimingPrecision
	}
	if s.Log.Level == "" {
		s.Log.Level = defaults.Log.Level
	}
}
