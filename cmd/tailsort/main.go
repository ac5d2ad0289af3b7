package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/tailsort"
	"github.com/projectdiscovery/tailsort/internal/runner"
)

func main() {

	cliOpts := runner.ParseFlags()

	cfg, err := cliOpts.LintConfig()
	if err != nil {
		gologger.Fatal().Msgf("failed to load lint config got %v", err)
	}

	table, dict, err := cliOpts.TableProvider(cfg).GetTable()
	if err != nil {
		gologger.Fatal().Msgf("failed to load order table got %v", err)
	}
	gologger.Info().Msgf("Using order table %v", table.Provenance())

	inputs, err := cliOpts.Inputs()
	if err != nil {
		gologger.Fatal().Msgf("failed to read input got %v", err)
	}

	p, err := tailsort.New(&tailsort.Options{
		Inputs:   inputs,
		Mode:     cliOpts.Mode,
		Limit:    cliOpts.Limit,
		Template: cliOpts.Template,
	}, tailsort.NewLinter(cfg, table, dict))
	if err != nil {
		gologger.Fatal().Msgf("failed to create processor got %v", err)
	}

	output := getOutputWriter(cliOpts.Output)
	if err = p.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
	closeOutput(output, cliOpts.Output)

	if cliOpts.Mode != tailsort.ModeSort {
		gologger.Info().Msgf("Found %d class attributes with findings out of %d", p.Findings(), len(inputs))
		if p.Findings() > 0 {
			os.Exit(1)
		}
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
