package tailsort

import "strings"

// DictionaryData lists the classes and variants considered valid
type DictionaryData struct {
	Classes  []string
	Variants []string
}

// Dictionary answers membership questions about classes and variants.
// It has no notion of order and is immutable once loaded.
type Dictionary struct {
	classes  map[string]struct{}
	variants map[string]struct{}
}

// LoadDictionaryData returns a new dictionary built from data
func LoadDictionaryData(data *DictionaryData) *Dictionary {
	d := &Dictionary{
		classes:  map[string]struct{}{},
		variants: map[string]struct{}{},
	}
	if data == nil {
		return d
	}
	for _, v := range data.Classes {
		d.classes[v] = struct{}{}
	}
	for _, v := range data.Variants {
		d.variants[v] = struct{}{}
	}
	return d
}

// KnownClass reports whether the base of name is a known class or
// uses an arbitrary value
func (d *Dictionary) KnownClass(name string) bool {
	base := BaseClass(name)
	if _, ok := d.classes[base]; ok {
		return true
	}
	return ArbitraryValue(base)
}

// KnownVariant reports whether variant is a known variant
func (d *Dictionary) KnownVariant(variant string) bool {
	_, ok := d.variants[variant]
	return ok
}

// ArbitraryValue reports whether name uses an arbitrary value
func (d *Dictionary) ArbitraryValue(name string) bool {
	return ArbitraryValue(name)
}

// Len returns the number of known classes and variants
func (d *Dictionary) Len() (classes int, variants int) {
	return len(d.classes), len(d.variants)
}

// ArbitraryValue reports whether name contains both `[` and `]`.
// Bracket content is not validated.
func ArbitraryValue(name string) bool {
	return strings.Contains(name, "[") && strings.Contains(name, "]")
}

// BaseClass strips the importance marker and everything up to the last `:`.
// Trailing separators are ignored so `flex:` has base `flex`, a name made
// only of separators is returned unchanged.
func BaseClass(name string) string {
	base := strings.TrimPrefix(name, ImportantMarker)
	trimmed := strings.TrimRight(base, VariantSeparator)
	if trimmed == "" {
		return base
	}
	if idx := strings.LastIndex(trimmed, VariantSeparator); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
