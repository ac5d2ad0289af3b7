package tailsort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeEmpty(t *testing.T) {
	for _, v := range []string{"", "   ", "\n\t "} {
		got := Tokenize(v)
		require.NotNil(t, got)
		require.Empty(t, got, "input %q", v)
	}
}

func TestTokenize(t *testing.T) {
	testcases := []struct {
		input    string
		expected []Token
	}{
		{
			input: "hover:bg-blue-500 lg:text-xl",
			expected: []Token{
				{Raw: "hover:bg-blue-500", Variants: []string{"hover"}, Base: "bg-blue-500"},
				{Raw: "lg:text-xl", Variants: []string{"lg"}, Base: "text-xl"},
			},
		},
		{
			input: "dark:lg:hover:bg-gray-800",
			expected: []Token{
				{Raw: "dark:lg:hover:bg-gray-800", Variants: []string{"dark", "lg", "hover"}, Base: "bg-gray-800"},
			},
		},
		{
			input: "  flex\n\t!p-4  ",
			expected: []Token{
				{Raw: "flex", Variants: []string{}, Base: "flex"},
				{Raw: "!p-4", Variants: []string{}, Base: "p-4", Important: true},
			},
		},
		{
			input: "!md:w-[100px]",
			expected: []Token{
				{Raw: "!md:w-[100px]", Variants: []string{"md"}, Base: "w-[100px]", Important: true, Arbitrary: "100px", HasArbitrary: true},
			},
		},
	}
	for _, v := range testcases {
		require.Equal(t, v.expected, Tokenize(v.input), "input %q", v.input)
	}
}

func TestParseClassKeepsVariantOrder(t *testing.T) {
	got := ParseClass("hover:dark:hover:p-4")
	require.Equal(t, []string{"hover", "dark", "hover"}, got.Variants)
	require.Equal(t, "hover:dark:hover", got.VariantKey())
}

func TestParseClassArbitrary(t *testing.T) {
	testcases := []struct {
		class     string
		arbitrary string
		found     bool
	}{
		{class: "w-[100px]", arbitrary: "100px", found: true},
		{class: "w-10", arbitrary: "", found: false},
		{class: "w-[]", arbitrary: "", found: true},
		{class: "grid-cols-[[a]_1fr]", arbitrary: "[a]_1fr", found: true},
		{class: "w-[100px", arbitrary: "", found: false},
		{class: "a]b[c", arbitrary: "", found: false},
	}
	for _, v := range testcases {
		got := ParseClass(v.class)
		require.Equal(t, v.found, got.HasArbitrary, "class %v", v.class)
		require.Equal(t, v.arbitrary, got.Arbitrary, "class %v", v.class)
	}
}

// colons inside arbitrary values are split like variant separators
func TestParseClassColonInArbitraryValue(t *testing.T) {
	got := ParseClass("bg-[url(http://x.png)]")
	require.Equal(t, []string{"bg-[url(http"}, got.Variants)
	require.Equal(t, "//x.png)]", got.Base)
	require.False(t, got.HasArbitrary)

	got = ParseClass("hover:content-['a:b']")
	require.Equal(t, []string{"hover", "content-['a"}, got.Variants)
	require.Equal(t, "b']", got.Base)
}

func TestParseClassDegenerate(t *testing.T) {
	got := ParseClass("!")
	require.True(t, got.Important)
	require.Equal(t, "", got.Base)

	got = ParseClass("hover:")
	require.Equal(t, []string{"hover"}, got.Variants)
	require.Equal(t, "", got.Base)
}
