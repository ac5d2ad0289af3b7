package tailsort

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testInputs = []Input{
	{Source: "a.html.erb", Line: 1, Value: "bg-red-500 p-4 flex"},
	{Source: "a.html.erb", Line: 4, Value: "flex p-4"},
	{Source: "b.html.erb", Line: 2, Value: "p-4 p-4 not-a-class"},
}

func newTestProcessor(t *testing.T, opts *Options) *Processor {
	opts.Inputs = testInputs
	p, err := New(opts, newTestLinter(t, nil))
	require.Nil(t, err)
	return p
}

func TestProcessorSort(t *testing.T) {
	p := newTestProcessor(t, &Options{})
	var buff bytes.Buffer
	require.Nil(t, p.ExecuteWithWriter(&buff))
	require.Equal(t, "flex p-4 bg-red-500\nflex p-4\np-4 p-4 not-a-class\n", buff.String())
	require.Equal(t, 0, p.Findings())
}

func TestProcessorModes(t *testing.T) {
	testcases := []struct {
		mode     string
		expected []string
	}{
		{mode: ModeCheck, expected: []string{
			"a.html.erb:1: classes are not in canonical order, expected `flex p-4 bg-red-500`",
		}},
		{mode: ModeDedupe, expected: []string{
			"b.html.erb:2: duplicate classes `p-4`",
		}},
		{mode: ModeUnknown, expected: []string{
			"b.html.erb:2: unknown classes `not-a-class`",
		}},
		{mode: ModeLint, expected: []string{
			"a.html.erb:1: classes are not in canonical order, expected `flex p-4 bg-red-500`",
			"b.html.erb:2: duplicate classes `p-4`; unknown classes `not-a-class`",
		}},
	}
	for _, v := range testcases {
		t.Run(v.mode, func(t *testing.T) {
			p := newTestProcessor(t, &Options{Mode: v.mode})
			var buff bytes.Buffer
			require.Nil(t, p.ExecuteWithWriter(&buff))
			require.Equal(t, v.expected, strings.Split(strings.TrimSpace(buff.String()), "\n"))
			require.Equal(t, len(v.expected), p.Findings())
		})
	}
}

func TestProcessorTemplate(t *testing.T) {
	p := newTestProcessor(t, &Options{Mode: ModeDedupe, Template: "{{source}}|{{line}}|{{input}}|{{output}}"})
	var buff bytes.Buffer
	require.Nil(t, p.ExecuteWithWriter(&buff))
	require.Equal(t, "b.html.erb|2|p-4 p-4 not-a-class|p-4 not-a-class\n", buff.String())

	p = newTestProcessor(t, &Options{Mode: ModeLint, Template: "{{output}}"})
	buff.Reset()
	require.Nil(t, p.ExecuteWithWriter(&buff))
	require.Equal(t, "flex p-4 bg-red-500\np-4 not-a-class\n", buff.String())
}

func TestProcessorLimit(t *testing.T) {
	p := newTestProcessor(t, &Options{Limit: 2})
	var buff bytes.Buffer
	require.Nil(t, p.ExecuteWithWriter(&buff))
	require.Len(t, strings.Split(strings.TrimSpace(buff.String()), "\n"), 2)
	require.Equal(t, 0, p.Findings())
}

func TestProcessorLimitFindings(t *testing.T) {
	for _, mode := range []string{ModeLint, ModeCheck, ModeDedupe} {
		t.Run(mode, func(t *testing.T) {
			p := newTestProcessor(t, &Options{Mode: mode, Limit: 1})
			var buff bytes.Buffer
			require.Nil(t, p.ExecuteWithWriter(&buff))
			lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
			require.Len(t, lines, 1)
			require.Equal(t, len(lines), p.Findings())
		})
	}
}

func TestProcessorExecute(t *testing.T) {
	p := newTestProcessor(t, &Options{Mode: ModeLint})
	var results []*Result
	for r := range p.Execute(context.Background()) {
		results = append(results, r)
	}
	require.Len(t, results, 2)
	require.Equal(t, "a.html.erb", results[0].Source)
	require.Equal(t, 2, results[1].Line)
	require.Equal(t, []string{"not-a-class"}, results[1].Unknown)
}

func TestProcessorErrors(t *testing.T) {
	_, err := New(&Options{Mode: "format"}, newTestLinter(t, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid mode")

	_, err = New(&Options{Template: "{{source}} {{column}}"}, newTestLinter(t, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "column")

	_, err = New(&Options{}, nil)
	require.Error(t, err)

	p := newTestProcessor(t, &Options{})
	require.Error(t, p.ExecuteWithWriter(nil))
}
