package tailsort

import (
	"slices"
	"strings"
)

// Sorter orders classes using the weights of an OrderTable
type Sorter struct {
	table *OrderTable
}

// NewSorter returns a sorter backed by table
func NewSorter(table *OrderTable) *Sorter {
	return &Sorter{table: table}
}

// Table returns the order table used by the sorter
func (s *Sorter) Table() *OrderTable {
	return s.table
}

// SortClasses returns classes in canonical order. The sort is stable so
// sorting already sorted input is a no-op. A nil slice returns nil while an
// empty slice returns an empty slice.
func (s *Sorter) SortClasses(classes []string) []string {
	if classes == nil {
		return nil
	}
	tokens := make([]Token, 0, len(classes))
	for _, class := range classes {
		tokens = append(tokens, ParseClass(class))
	}
	slices.SortStableFunc(tokens, s.CompareTokens)
	sorted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		sorted = append(sorted, t.Raw)
	}
	return sorted
}

// CompareClasses compares two classes and returns -1, 0 or 1
func (s *Sorter) CompareClasses(a, b string) int {
	return s.CompareTokens(ParseClass(a), ParseClass(b))
}

// CompareTokens compares by variant count, variant weights, base weight,
// importance and finally the base class itself.
func (s *Sorter) CompareTokens(a, b Token) int {
	if c := compareInt(len(a.Variants), len(b.Variants)); c != 0 {
		return c
	}
	if c := s.compareVariants(a.Variants, b.Variants); c != 0 {
		return c
	}
	if c := compareInt(s.table.ClassWeight(a.Base), s.table.ClassWeight(b.Base)); c != 0 {
		return c
	}
	if a.Important != b.Important {
		if a.Important {
			return 1
		}
		return -1
	}
	return strings.Compare(a.Base, b.Base)
}

// compareVariants decides on the first position where both lists differ
func (s *Sorter) compareVariants(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		if c := compareInt(s.table.VariantWeight(a[i]), s.table.VariantWeight(b[i])); c != 0 {
			return c
		}
		return strings.Compare(a[i], b[i])
	}
	return 0
}

// IsSorted reports whether classes already are in canonical order
func (s *Sorter) IsSorted(classes []string) bool {
	return slices.Equal(classes, s.SortClasses(classes))
}

// Group is a run of sorted classes sharing a category
type Group struct {
	Category string
	Classes  []string
}

// SortGrouped sorts classes and splits the result into consecutive
// groups of the same category
func (s *Sorter) SortGrouped(classes []string) []Group {
	sorted := s.SortClasses(classes)
	if sorted == nil {
		return nil
	}
	groups := []Group{}
	for _, class := range sorted {
		category := s.table.Category(ParseClass(class).Base)
		if n := len(groups); n > 0 && groups[n-1].Category == category {
			groups[n-1].Classes = append(groups[n-1].Classes, class)
			continue
		}
		groups = append(groups, Group{Category: category, Classes: []string{class}})
	}
	return groups
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
