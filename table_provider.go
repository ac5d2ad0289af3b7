package tailsort

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
)

// TableProvider defines where ordering data is loaded from.
type TableProvider interface {
	// GetTable returns a freshly loaded order table and dictionary
	GetTable() (*OrderTable, *Dictionary, error)
}

// PresetProvider provides one of the embedded presets
type PresetProvider struct {
	name string
}

// NewPresetProvider creates a provider for the named preset.
// An empty name selects DefaultPreset.
func NewPresetProvider(name string) *PresetProvider {
	if name == "" {
		name = DefaultPreset
	}
	return &PresetProvider{name: name}
}

// GetTable loads the embedded preset
func (p *PresetProvider) GetTable() (*OrderTable, *Dictionary, error) {
	table, dict, err := LoadPreset(p.name)
	if err != nil {
		return nil, nil, err
	}
	gologger.Verbose().Msgf("loaded order table %v", table.Provenance())
	return table, dict, nil
}

// FileProvider provides an order table generated into a yaml file
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading filePath
func NewFileProvider(filePath string) *FileProvider {
	return &FileProvider{path: filePath}
}

// GetTable parses the table file
func (f *FileProvider) GetTable() (*OrderTable, *Dictionary, error) {
	if f.path == "" {
		return nil, nil, fmt.Errorf("no order table file provided")
	}
	table, dict, err := ParseTableFile(f.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %v: %w", f.path, err)
	}
	classes, variants := dict.Len()
	gologger.Verbose().Msgf("loaded order table %v from %v (%d classes, %d variants)", table.Provenance(), f.path, classes, variants)
	return table, dict, nil
}
