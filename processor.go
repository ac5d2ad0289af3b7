package tailsort

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// ModeSort prints every value in canonical order
	ModeSort = "sort"
	// ModeCheck reports values not in canonical order
	ModeCheck = "check"
	// ModeDedupe reports values with duplicate classes
	ModeDedupe = "dedupe"
	// ModeUnknown reports values with unknown classes
	ModeUnknown = "unknown"
	// ModeLint reports every finding
	ModeLint = "lint"
)

// Modes lists all supported modes
var Modes = []string{ModeSort, ModeCheck, ModeDedupe, ModeUnknown, ModeLint}

const (
	// DefaultSortTemplate only prints the corrected value
	DefaultSortTemplate = "{{output}}"
	// DefaultReportTemplate prints location and message of a finding
	DefaultReportTemplate = "{{source}}:{{line}}: {{message}}"
)

// Input is a class attribute value and where it was found
type Input struct {
	Source string
	Line   int
	Value  string
}

// Processor Options
type Options struct {
	// class attribute values to process
	Inputs []Input
	// one of Modes, defaults to ModeSort
	Mode string
	// Limits output results (0 = no limit)
	Limit int
	// output template, defaults depend on Mode
	Template string
}

// Processor runs the linter over many inputs
type Processor struct {
	Options  *Options
	linter   *Linter
	findings atomic.Int64
}

// New creates and returns new processor instance from options
func New(opts *Options, linter *Linter) (*Processor, error) {
	if linter == nil {
		return nil, fmt.Errorf("no linter provided")
	}
	if opts.Mode == "" {
		opts.Mode = ModeSort
	}
	if !contains(Modes, opts.Mode) {
		return nil, fmt.Errorf("invalid mode `%v` (must be one of %v)", opts.Mode, strings.Join(Modes, ","))
	}
	if opts.Template == "" {
		opts.Template = DefaultReportTemplate
		if opts.Mode == ModeSort {
			opts.Template = DefaultSortTemplate
		}
	}
	if err := validateTemplate(opts.Template); err != nil {
		return nil, err
	}
	if len(opts.Inputs) == 0 {
		gologger.Warning().Msgf("no class attribute values found to process")
	}
	return &Processor{Options: opts, linter: linter}, nil
}

// Execute lints all inputs and sends results relevant to the mode
// to the returned channel
func (p *Processor) Execute(ctx context.Context) <-chan *Result {
	results := make(chan *Result, 100)
	go func() {
		defer close(results)
		for _, in := range p.Options.Inputs {
			r := p.linter.Lint(in.Value)
			r.Source, r.Line = in.Source, in.Line
			if !p.relevant(r) {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case results <- r:
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Processor and writes rendered results directly to type that implements io.Writer interface
func (p *Processor) ExecuteWithWriter(Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("tailsort", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	counter := 0
	for r := range p.Execute(ctx) {
		if p.Options.Limit > 0 && counter == p.Options.Limit {
			return nil
		}
		if _, err := Writer.Write([]byte(p.Render(r) + "\n")); err != nil {
			return err
		}
		if p.Options.Mode != ModeSort {
			p.findings.Add(1)
		}
		counter++
	}
	return nil
}

// Findings returns the number of results with findings written by ExecuteWithWriter
func (p *Processor) Findings() int {
	return int(p.findings.Load())
}

// Render formats a result with the output template
func (p *Processor) Render(r *Result) string {
	return Replace(p.Options.Template, resultValues(r, p.output(r), p.message(r)))
}

func (p *Processor) relevant(r *Result) bool {
	switch p.Options.Mode {
	case ModeCheck:
		return r.OutOfOrder
	case ModeDedupe:
		return len(r.Duplicates) > 0
	case ModeUnknown:
		return len(r.Unknown) > 0
	case ModeLint:
		return r.HasFindings()
	}
	return true
}

func (p *Processor) output(r *Result) string {
	switch p.Options.Mode {
	case ModeDedupe:
		return strings.Join(r.Deduped, " ")
	case ModeLint:
		return p.linter.Autocorrect(r.Input)
	}
	if len(r.Groups) > 0 {
		return renderGroups(r.Groups)
	}
	return r.Corrected
}

func (p *Processor) message(r *Result) string {
	var parts []string
	if r.OutOfOrder && (p.Options.Mode == ModeCheck || p.Options.Mode == ModeLint || p.Options.Mode == ModeSort) {
		parts = append(parts, fmt.Sprintf("classes are not in canonical order, expected `%v`", r.Corrected))
	}
	if len(r.Duplicates) > 0 && (p.Options.Mode == ModeDedupe || p.Options.Mode == ModeLint) {
		parts = append(parts, fmt.Sprintf("duplicate classes `%v`", strings.Join(r.Duplicates, " ")))
	}
	if len(r.Unknown) > 0 && (p.Options.Mode == ModeUnknown || p.Options.Mode == ModeLint) {
		parts = append(parts, fmt.Sprintf("unknown classes `%v`", strings.Join(r.Unknown, " ")))
	}
	return strings.Join(parts, "; ")
}
