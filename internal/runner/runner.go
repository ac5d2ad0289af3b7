package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/tailsort"
	"github.com/projectdiscovery/tailsort/internal/extract"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Classes            goflags.StringSlice // class attribute values
	ClassList          string              // file with one class attribute value per line
	Files              goflags.StringSlice // html/erb templates to scan
	Mode               string
	Output             string
	Template           string
	Config             string
	LintConfigFile     string
	Preset             string
	Table              string
	Grouped            bool
	DedupeAcrossVar    bool
	NoArbitrary        bool
	Safelist           goflags.StringSlice
	Plugins            goflags.StringSlice
	Limit              int
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	// internal/unexported fields
	stdin []string
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Sort, dedupe and validate utility classes in canonical order.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Classes, "classes", "c", nil, "class attribute value to process (repeatable)", goflags.StringSliceOptions),
		flagSet.StringVarP(&opts.ClassList, "list", "l", "", "file containing one class attribute value per line"),
		flagSet.StringSliceVarP(&opts.Files, "files", "f", nil, "html/erb templates to scan for class attributes (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Mode, "mode", "m", tailsort.ModeSort, fmt.Sprintf("processing mode (%v)", strings.Join(tailsort.Modes, ","))),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", "output template using {{source}},{{line}},{{input}},{{output}},{{message}}"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display tailsort version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `tailsort cli config file (default '$HOME/.config/tailsort/config.yaml')`),
		flagSet.StringVarP(&opts.LintConfigFile, "lint-config", "lc", "", fmt.Sprintf(`tailsort lint config file (default '$HOME/.config/tailsort/config_%v.yaml')`, version)),
		flagSet.StringVarP(&opts.Preset, "preset", "p", "", fmt.Sprintf("order preset to use (%v)", strings.Join(tailsort.Presets(), ","))),
		flagSet.StringVarP(&opts.Table, "table", "tb", "", "generated order table file to use instead of a preset"),
		flagSet.BoolVarP(&opts.Grouped, "grouped", "g", false, "group sorted classes by category"),
		flagSet.BoolVarP(&opts.DedupeAcrossVar, "dedupe-across-variants", "dav", false, "ignore variant order when looking for duplicates"),
		flagSet.BoolVarP(&opts.NoArbitrary, "no-arbitrary", "na", false, "report classes with arbitrary values as unknown"),
		flagSet.StringSliceVarP(&opts.Safelist, "safelist", "sl", nil, "classes to never report as unknown (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringSliceVar(&opts.Plugins, "plugins", nil, "plugins whose classes are known (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update tailsort to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic tailsort update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("tailsort")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("tailsort version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current tailsort version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	loadDefaultLintConfig()

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.stdin = strings.Split(strings.TrimRight(string(bin), "\n"), "\n")
	}

	if len(opts.Classes) == 0 && opts.ClassList == "" && len(opts.Files) == 0 && len(opts.stdin) == 0 {
		gologger.Fatal().Msgf("tailsort: no input found")
	}

	return opts
}

// LintConfig returns the lint config with cli overrides applied
func (o *Options) LintConfig() (tailsort.Config, error) {
	cfg := tailsort.DefaultConfig
	if o.LintConfigFile != "" {
		fileCfg, err := tailsort.NewConfig(o.LintConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *fileCfg
	}
	if o.Preset != "" {
		cfg.ClassOrder.OrderPreset = o.Preset
	}
	if o.Grouped {
		cfg.ClassOrder.Grouping = tailsort.GroupingGrouped
	}
	if o.DedupeAcrossVar {
		cfg.Duplicate.DedupeAcrossVariants = true
	}
	if o.NoArbitrary {
		cfg.Unknown.AllowArbitraryValues = false
	}
	cfg.Unknown.Safelist = append(append([]string{}, cfg.Unknown.Safelist...), o.Safelist...)
	cfg.Unknown.Plugins = append(append([]string{}, cfg.Unknown.Plugins...), o.Plugins...)
	return cfg, cfg.Validate()
}

// TableProvider returns the source of ordering data selected by options
func (o *Options) TableProvider(cfg tailsort.Config) tailsort.TableProvider {
	if o.Table != "" {
		return tailsort.NewFileProvider(o.Table)
	}
	return tailsort.NewPresetProvider(cfg.ClassOrder.OrderPreset)
}

// Inputs collects class attribute values from all input sources
func (o *Options) Inputs() ([]tailsort.Input, error) {
	var inputs []tailsort.Input
	for i, v := range o.Classes {
		inputs = append(inputs, tailsort.Input{Source: "input", Line: i + 1, Value: v})
	}
	if o.ClassList != "" {
		bin, err := os.ReadFile(o.ClassList)
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", o.ClassList, err)
		}
		inputs = append(inputs, linesToInputs(o.ClassList, strings.Split(string(bin), "\n"))...)
	}
	inputs = append(inputs, linesToInputs("stdin", o.stdin)...)
	for _, file := range o.Files {
		found, err := scanTemplate(file)
		if err != nil {
			gologger.Error().Msgf("failed to scan %v got %v", file, err)
			continue
		}
		gologger.Verbose().Msgf("found %d class attributes in %v", len(found), file)
		inputs = append(inputs, found...)
	}
	return inputs, nil
}

func linesToInputs(source string, lines []string) []tailsort.Input {
	var inputs []tailsort.Input
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, tailsort.Input{Source: source, Line: i + 1, Value: line})
	}
	return inputs
}

func scanTemplate(file string) ([]tailsort.Input, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	attrs, err := extract.ClassAttributes(f)
	if err != nil {
		return nil, err
	}
	inputs := make([]tailsort.Input, 0, len(attrs))
	for _, a := range attrs {
		if a.Dynamic {
			gologger.Debug().Msgf("%v:%d: ignoring erb tags in class attribute", file, a.Line)
		}
		inputs = append(inputs, tailsort.Input{Source: file, Line: a.Line, Value: a.Value})
	}
	return inputs, nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
