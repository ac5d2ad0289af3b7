package tailsort

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// GroupingFlat keeps sorted classes in one run
	GroupingFlat = "flat"
	// GroupingGrouped splits sorted classes by category
	GroupingGrouped = "grouped"
)

// ClassOrderConfig configures the class order check
type ClassOrderConfig struct {
	OrderPreset string `yaml:"order_preset"`
	Grouping    string `yaml:"grouping"`
}

// DuplicateConfig configures the duplicate class check
type DuplicateConfig struct {
	// DedupeAcrossVariants treats the variants of a class as a set
	// so `hover:focus:p-4` duplicates `focus:hover:p-4`
	DedupeAcrossVariants bool `yaml:"dedupe_across_variants"`
}

// UnknownConfig configures the unknown class check
type UnknownConfig struct {
	AllowArbitraryValues bool     `yaml:"allow_arbitrary_values"`
	Safelist             []string `yaml:"safelist"`
	Plugins              []string `yaml:"plugins"`
}

type Config struct {
	ClassOrder ClassOrderConfig `yaml:"class_order"`
	Duplicate  DuplicateConfig  `yaml:"duplicate"`
	Unknown    UnknownConfig    `yaml:"unknown"`
}

// DefaultConfig is used when no lint config is provided
var DefaultConfig = Config{
	ClassOrder: ClassOrderConfig{
		OrderPreset: DefaultPreset,
		Grouping:    GroupingFlat,
	},
	Unknown: UnknownConfig{
		AllowArbitraryValues: true,
		Safelist:             []string{},
		Plugins:              []string{},
	},
}

// NewConfig reads config from file, missing fields keep their defaults
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(bin)
	if err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", filePath, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates yaml config data on top of DefaultConfig.
// Unknown keys are rejected, empty data yields the defaults.
func ParseConfig(bin []byte) (*Config, error) {
	cfg := DefaultConfig
	dec := yaml.NewDecoder(bytes.NewReader(bin))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum fields and plugin names
func (c *Config) Validate() error {
	known := false
	for _, p := range Presets() {
		if c.ClassOrder.OrderPreset == p {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unsupported order_preset `%v`", c.ClassOrder.OrderPreset)
	}
	if c.ClassOrder.Grouping != GroupingFlat && c.ClassOrder.Grouping != GroupingGrouped {
		return fmt.Errorf("grouping must be `%v` or `%v` got `%v`", GroupingFlat, GroupingGrouped, c.ClassOrder.Grouping)
	}
	for _, p := range c.Unknown.Plugins {
		if _, ok := PluginClasses[p]; !ok {
			return fmt.Errorf("unknown plugin `%v`", p)
		}
	}
	return nil
}

// Marshal returns the yaml encoding of config
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Generate Sample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := DefaultConfig
	bin, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
