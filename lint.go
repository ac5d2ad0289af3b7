package tailsort

import (
	"slices"
	"sort"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Result holds the verdicts of all checks for one class attribute value
type Result struct {
	Source     string   // file or input the value was read from
	Line       int      // 1-based line of the value, 0 when unknown
	Input      string   // attribute value as written
	Classes    []string // classes in input order
	Sorted     []string // classes in canonical order
	Groups     []Group  // sorted classes split by category (grouped mode only)
	OutOfOrder bool
	Corrected  string   // autocorrected attribute value
	Duplicates []string // classes repeating an earlier class
	Deduped    []string // classes with duplicates removed, input order
	Unknown    []string // classes not recognized
}

// HasFindings returns true if any check failed
func (r *Result) HasFindings() bool {
	return r.OutOfOrder || len(r.Duplicates) > 0 || len(r.Unknown) > 0
}

// Linter runs the order, duplicate and unknown checks
type Linter struct {
	cfg      Config
	sorter   *Sorter
	dict     *Dictionary
	safelist map[string]struct{}
}

// NewLinter creates a linter from config using the given table and dictionary
func NewLinter(cfg Config, table *OrderTable, dict *Dictionary) *Linter {
	l := &Linter{
		cfg:      cfg,
		sorter:   NewSorter(table),
		dict:     dict,
		safelist: map[string]struct{}{},
	}
	for _, v := range cfg.Unknown.Safelist {
		l.safelist[v] = struct{}{}
	}
	for _, p := range cfg.Unknown.Plugins {
		for _, v := range PluginClasses[p] {
			l.safelist[v] = struct{}{}
		}
	}
	return l
}

// NewDefaultLinter creates a linter for DefaultConfig
func NewDefaultLinter() (*Linter, error) {
	table, dict, err := NewPresetProvider(DefaultConfig.ClassOrder.OrderPreset).GetTable()
	if err != nil {
		return nil, err
	}
	return NewLinter(DefaultConfig, table, dict), nil
}

// Sorter returns the sorter used for the order check
func (l *Linter) Sorter() *Sorter {
	return l.sorter
}

// Lint runs every check on a class attribute value
func (l *Linter) Lint(value string) *Result {
	classes := strings.Fields(value)
	r := &Result{
		Input:   value,
		Classes: classes,
	}
	r.Sorted = l.sorter.SortClasses(classes)
	r.OutOfOrder = !slices.Equal(classes, r.Sorted)
	r.Corrected = strings.Join(r.Sorted, " ")
	if l.cfg.ClassOrder.Grouping == GroupingGrouped {
		r.Groups = l.sorter.SortGrouped(classes)
	}
	r.Duplicates, r.Deduped = l.duplicates(classes)
	r.Unknown = l.unknown(classes)
	return r
}

// Autocorrect returns value with classes in canonical order and
// duplicates removed
func (l *Linter) Autocorrect(value string) string {
	_, deduped := l.duplicates(strings.Fields(value))
	return strings.Join(l.sorter.SortClasses(deduped), " ")
}

func (l *Linter) duplicates(classes []string) (dups []string, deduped []string) {
	keys := make([]string, 0, len(classes))
	for _, class := range classes {
		keys = append(keys, l.duplicateKey(class))
	}
	seen := map[string]struct{}{}
	for i, key := range keys {
		if _, ok := seen[key]; ok {
			dups = append(dups, classes[i])
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, classes[i])
	}
	return sliceutil.Dedupe(dups), deduped
}

func (l *Linter) duplicateKey(class string) string {
	if !l.cfg.Duplicate.DedupeAcrossVariants {
		return class
	}
	t := ParseClass(class)
	variants := append([]string{}, t.Variants...)
	sort.Strings(variants)
	variants = sliceutil.Dedupe(variants)
	key := strings.Join(append(variants, t.Base), VariantSeparator)
	if t.Important {
		key = ImportantMarker + key
	}
	return key
}

func (l *Linter) unknown(classes []string) []string {
	var unknown []string
	for _, class := range classes {
		if !l.known(class) {
			unknown = append(unknown, class)
		}
	}
	return sliceutil.Dedupe(unknown)
}

func (l *Linter) known(class string) bool {
	t := ParseClass(class)
	for _, v := range t.Variants {
		if !l.dict.KnownVariant(v) && !ArbitraryValue(v) {
			return false
		}
	}
	base := BaseClass(class)
	if _, ok := l.safelist[base]; ok {
		return true
	}
	if ArbitraryValue(base) {
		return l.cfg.Unknown.AllowArbitraryValues
	}
	return l.dict.KnownClass(class)
}
