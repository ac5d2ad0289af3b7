package tailsort

import "strings"

// Token is the parsed form of a single utility class
type Token struct {
	Raw          string   // class as written in the attribute ex: `!hover:bg-red-500`
	Variants     []string // variant prefixes, outermost first ex: [`dark`, `lg`, `hover`]
	Base         string   // utility without variants and importance marker ex: `bg-red-500`
	Important    bool     // true if class started with `!`
	Arbitrary    string   // content of the first bracket pair in Base ex: `100px`
	HasArbitrary bool     // true if Arbitrary was found (it may still be empty ex: `w-[]`)
}

// VariantKey returns variants joined the way they were written
func (t Token) VariantKey() string {
	return strings.Join(t.Variants, VariantSeparator)
}
