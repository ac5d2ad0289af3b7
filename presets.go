package tailsort

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultPreset is the order preset used when none is configured
const DefaultPreset = "tailwindcss-v4"

//go:embed presets/*.yaml
var presetFS embed.FS

// TableData is the on-disk layout of an order table with its dictionary
type TableData struct {
	Source        string         `yaml:"source"`
	Version       string         `yaml:"version"`
	Preset        string         `yaml:"preset"`
	Patterns      []PatternRule  `yaml:"patterns"`
	Exact         map[string]int `yaml:"exact"`
	Variants      map[string]int `yaml:"variants"`
	KnownClasses  []string       `yaml:"known_classes"`
	KnownVariants []string       `yaml:"known_variants"`
}

// OrderData returns the ordering part of the table
func (d *TableData) OrderData() *OrderData {
	return &OrderData{
		Source:   d.Source,
		Version:  d.Version,
		Preset:   d.Preset,
		Patterns: d.Patterns,
		Exact:    d.Exact,
		Variants: d.Variants,
	}
}

// DictionaryData returns the membership part of the table
func (d *TableData) DictionaryData() *DictionaryData {
	return &DictionaryData{Classes: d.KnownClasses, Variants: d.KnownVariants}
}

// Presets returns the names of all embedded presets
func Presets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// LoadPreset loads the order table and dictionary of an embedded preset
func LoadPreset(name string) (*OrderTable, *Dictionary, error) {
	bin, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("unknown order preset `%v` (available: %v)", name, strings.Join(Presets(), ","))
	}
	return loadTable(bin)
}

// ParseTableFile loads a user supplied order table
func ParseTableFile(filePath string) (*OrderTable, *Dictionary, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	return loadTable(bin)
}

// ParseTableData decodes table data. Unknown fields are rejected so that a
// typo in generated data fails instead of silently changing the order.
func ParseTableData(bin []byte) (*TableData, error) {
	var data TableData
	if err := yaml.UnmarshalWithOptions(bin, &data, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	return &data, nil
}

func loadTable(bin []byte) (*OrderTable, *Dictionary, error) {
	data, err := ParseTableData(bin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse order table: %w", err)
	}
	table, err := LoadOrderData(data.OrderData())
	if err != nil {
		return nil, nil, err
	}
	return table, LoadDictionaryData(data.DictionaryData()), nil
}
