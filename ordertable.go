package tailsort

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// FallbackWeight is the start of the region unknown classes sort into
	FallbackWeight = 10000
	// FallbackSpread is the width of the unknown class region
	FallbackSpread = 1000
	// UnknownVariantWeight is used for every variant missing from the table
	UnknownVariantWeight = 10000
	// UnknownCategory is reported for classes matched by no rule
	UnknownCategory = "unknown"
	// ExactCategory is reported for exact weights without a matching rule
	ExactCategory = "exact"
)

// MaxCachedWeights bounds the per table weight memo
var MaxCachedWeights = 4096

// PatternRule assigns Weight to every class matching Pattern
type PatternRule struct {
	Pattern  string `yaml:"pattern"`
	Weight   int    `yaml:"weight"`
	Category string `yaml:"category"`
}

// OrderData is the raw, generated ordering data
type OrderData struct {
	Source   string
	Version  string
	Preset   string
	Patterns []PatternRule
	Exact    map[string]int
	Variants map[string]int
}

type compiledRule struct {
	PatternRule
	re *regexp2.Regexp
}

type weighted struct {
	weight   int
	category string
}

// OrderTable resolves ordering weights of base classes and variants.
// It is immutable once loaded and safe for concurrent use.
type OrderTable struct {
	source   string
	version  string
	preset   string
	exact    map[string]int
	rules    []compiledRule
	variants map[string]int
	cache    *lru.Cache[string, weighted]
}

// LoadOrderData compiles data into a new OrderTable.
// The returned table replaces any previous one, nothing is merged.
func LoadOrderData(data *OrderData) (*OrderTable, error) {
	if data == nil {
		data = &OrderData{}
	}
	t := &OrderTable{
		source:   data.Source,
		version:  data.Version,
		preset:   data.Preset,
		exact:    make(map[string]int, len(data.Exact)),
		rules:    make([]compiledRule, 0, len(data.Patterns)),
		variants: make(map[string]int, len(data.Variants)),
	}
	for k, v := range data.Exact {
		t.exact[k] = v
	}
	for k, v := range data.Variants {
		t.variants[k] = v
	}
	for i, rule := range data.Patterns {
		// rules are generated from a javascript tool
		re, err := regexp2.Compile(rule.Pattern, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern #%d `%v`: %w", i, rule.Pattern, err)
		}
		t.rules = append(t.rules, compiledRule{PatternRule: rule, re: re})
	}
	cache, err := lru.New[string, weighted](MaxCachedWeights)
	if err != nil {
		return nil, err
	}
	t.cache = cache
	return t, nil
}

// ClassWeight returns the ordering weight of a base class.
// Exact weights win over pattern rules, the first matching rule wins over
// later ones and anything else gets a stable weight in the fallback region.
func (t *OrderTable) ClassWeight(base string) int {
	return t.resolve(base).weight
}

// Category returns the category of the rule deciding the weight of base
func (t *OrderTable) Category(base string) string {
	return t.resolve(base).category
}

// VariantWeight returns the ordering weight of a variant
func (t *OrderTable) VariantWeight(variant string) int {
	if w, ok := t.variants[variant]; ok {
		return w
	}
	return UnknownVariantWeight
}

// Provenance describes where the table data was generated from
func (t *OrderTable) Provenance() string {
	return fmt.Sprintf("%v@%v (%v)", t.source, t.version, t.preset)
}

// Rules returns a copy of the pattern rules in evaluation order
func (t *OrderTable) Rules() []PatternRule {
	rules := make([]PatternRule, 0, len(t.rules))
	for _, r := range t.rules {
		rules = append(rules, r.PatternRule)
	}
	return rules
}

func (t *OrderTable) resolve(base string) weighted {
	if v, ok := t.cache.Get(base); ok {
		return v
	}
	res := t.lookup(base)
	t.cache.Add(base, res)
	return res
}

func (t *OrderTable) lookup(base string) weighted {
	rule, matched := t.match(base)
	if w, ok := t.exact[base]; ok {
		if matched {
			return weighted{weight: w, category: rule.Category}
		}
		return weighted{weight: w, category: ExactCategory}
	}
	if matched {
		return weighted{weight: rule.Weight, category: rule.Category}
	}
	return weighted{weight: FallbackWeightOf(base), category: UnknownCategory}
}

func (t *OrderTable) match(base string) (compiledRule, bool) {
	for _, rule := range t.rules {
		// MatchString only errors on timeout which is never set
		if ok, err := rule.re.MatchString(base); err == nil && ok {
			return rule, true
		}
	}
	return compiledRule{}, false
}

// FallbackWeightOf returns the weight of a class matched by nothing.
// It only depends on base so it is identical across runs and platforms.
func FallbackWeightOf(base string) int {
	return FallbackWeight + int(xxhash.Sum64String(base)%FallbackSpread)
}
