package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/tailsort"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultLintConfigPath returns the per version default lint config location
func defaultLintConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/tailsort/config_%v.yaml", version)), nil
}

// loadDefaultLintConfig uses the default lint config file if it exists
// and creates it from tailsort.DefaultConfig otherwise
func loadDefaultLintConfig() {
	defaultLintCfg, err := defaultLintConfigPath()
	if err != nil {
		gologger.Verbose().Msgf("could not resolve home directory: %v", err)
		return
	}
	if fileutil.FileExists(defaultLintCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultLintCfg); err == nil {
			cfg, errx := tailsort.ParseConfig(bin)
			if errx == nil {
				tailsort.DefaultConfig = *cfg
				return
			}
			gologger.Warning().Msgf("ignoring invalid default config %v: %v", defaultLintCfg, errx)
		}
		return
	}
	if err := os.MkdirAll(filepath.Dir(defaultLintCfg), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", defaultLintCfg, err)
		return
	}
	if err := tailsort.GenerateSample(defaultLintCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultLintCfg, err)
	}
}
