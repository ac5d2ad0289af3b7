package tailsort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *OrderTable {
	table, err := LoadOrderData(&OrderData{
		Source:  "test",
		Version: "1.0.0",
		Preset:  "unit",
		Patterns: []PatternRule{
			{Pattern: "^bg-", Weight: 700, Category: "backgrounds"},
			{Pattern: "^b", Weight: 50, Category: "b"},
			{Pattern: "^[pm][trblxy]?-", Weight: 400, Category: "spacing"},
		},
		Exact:    map[string]int{"bg-special": 1, "zzz": 5},
		Variants: map[string]int{"hover": 10, "lg": 20},
	})
	require.Nil(t, err)
	return table
}

func TestClassWeight(t *testing.T) {
	table := newTestTable(t)
	testcases := []struct {
		base     string
		weight   int
		category string
	}{
		{base: "bg-red-500", weight: 700, category: "backgrounds"}, // first rule wins over ^b
		{base: "block", weight: 50, category: "b"},
		{base: "px-4", weight: 400, category: "spacing"},
		{base: "bg-special", weight: 1, category: "backgrounds"},
		{base: "zzz", weight: 5, category: ExactCategory},
		{base: "qqq", weight: FallbackWeightOf("qqq"), category: UnknownCategory},
	}
	for _, v := range testcases {
		require.Equal(t, v.weight, table.ClassWeight(v.base), "base %v", v.base)
		require.Equal(t, v.category, table.Category(v.base), "base %v", v.base)
		// second lookup is served from the memo
		require.Equal(t, v.weight, table.ClassWeight(v.base), "base %v", v.base)
	}
}

func TestFallbackWeight(t *testing.T) {
	for _, v := range []string{"not-a-class", "x", "", "w-[100px]", "ü"} {
		w := FallbackWeightOf(v)
		require.GreaterOrEqual(t, w, FallbackWeight)
		require.Less(t, w, FallbackWeight+FallbackSpread)
		require.Equal(t, w, FallbackWeightOf(v))
	}
	// xxhash64 of the empty string is 0xef46db3751d8e999
	require.Equal(t, FallbackWeight+int(uint64(0xef46db3751d8e999)%FallbackSpread), FallbackWeightOf(""))
}

func TestVariantWeight(t *testing.T) {
	table := newTestTable(t)
	require.Equal(t, 10, table.VariantWeight("hover"))
	require.Equal(t, 20, table.VariantWeight("lg"))
	require.Equal(t, UnknownVariantWeight, table.VariantWeight("not-a-variant"))
	require.Equal(t, table.VariantWeight("a"), table.VariantWeight("b"))
}

func TestLoadOrderDataReplaces(t *testing.T) {
	data := &OrderData{
		Patterns: []PatternRule{{Pattern: "^p-", Weight: 1, Category: "one"}},
		Exact:    map[string]int{"flex": 3},
	}
	first, err := LoadOrderData(data)
	require.Nil(t, err)

	data.Exact["flex"] = 99
	data.Patterns = []PatternRule{{Pattern: "^m-", Weight: 2, Category: "two"}}
	second, err := LoadOrderData(data)
	require.Nil(t, err)

	require.Equal(t, 3, first.ClassWeight("flex"))
	require.Equal(t, 1, first.ClassWeight("p-4"))
	require.Equal(t, 99, second.ClassWeight("flex"))
	require.Equal(t, FallbackWeightOf("p-4"), second.ClassWeight("p-4"))
	require.Equal(t, 2, second.ClassWeight("m-4"))
}

func TestLoadOrderDataErrors(t *testing.T) {
	_, err := LoadOrderData(&OrderData{Patterns: []PatternRule{{Pattern: "^(bg", Weight: 1}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pattern #0")

	empty, err := LoadOrderData(nil)
	require.Nil(t, err)
	require.Equal(t, FallbackWeightOf("flex"), empty.ClassWeight("flex"))
	require.Empty(t, empty.Rules())
}

func TestRulesKeepOrder(t *testing.T) {
	table := newTestTable(t)
	rules := table.Rules()
	require.Len(t, rules, 3)
	require.Equal(t, "^bg-", rules[0].Pattern)
	require.Equal(t, "^b", rules[1].Pattern)
	require.Equal(t, "test@1.0.0 (unit)", table.Provenance())
}
