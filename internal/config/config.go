package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sharkfolio/sharkgen/internal/model"
	"github.com/sharkfolio/sharkgen/internal/roster"
)

// FileName is the conventional config file name.
const FileName = "sharkgen.yaml"

const (
	defaultInput      = "data/Shark Tank India.csv"
	defaultOutput     = "app/constants/shark-data.ts"
	defaultExportName = "sharkInvestments"
)

// Config represents sharkgen.yaml.
type Config struct {
	Variant model.Variant `yaml:"variant" validate:"oneof=simple enhanced"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	// Roster replaces the built-in roster for the variant when set.
	Roster *model.Roster `yaml:"roster,omitempty"`
}

// InputConfig locates the pitch table.
type InputConfig struct {
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format,omitempty"` // "csv" or "xlsx"; empty = by extension
	Sheet  string `yaml:"sheet,omitempty"`  // xlsx only; empty = first sheet
}

// OutputConfig locates the generated module.
type OutputConfig struct {
	Path       string `yaml:"path" validate:"required"`
	ExportName string `yaml:"export_name" validate:"identifier"`
}

// Load reads a sharkgen.yaml file from disk. Unset fields take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for the variant with the built-in paths. The
// roster is left to the built-in one.
func Default(v model.Variant) *Config {
	cfg := &Config{Variant: v}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Variant == "" {
		c.Variant = model.VariantEnhanced
	}
	if c.Input.Path == "" {
		c.Input.Path = defaultInput
	}
	if c.Output.Path == "" {
		c.Output.Path = defaultOutput
	}
	if c.Output.ExportName == "" {
		c.Output.ExportName = defaultExportName
	}
}

// ResolveRoster returns the configured roster, or the built-in roster for
// the variant when none is configured.
func (c *Config) ResolveRoster() model.Roster {
	if c.Roster != nil {
		return *c.Roster
	}
	return roster.DefaultRoster(c.Variant)
}
