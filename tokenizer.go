package tailsort

import "strings"

const (
	// ImportantMarker forces !important on the generated rule
	ImportantMarker = "!"
	// VariantSeparator separates variants from each other and from the base class
	VariantSeparator = ":"
)

// Tokenize splits a class attribute value on whitespace and parses
// every class into a Token. Empty or blank input returns an empty slice.
func Tokenize(input string) []Token {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, ParseClass(field))
	}
	return tokens
}

// ParseClass parses a single class into a Token.
//
// Variants are split on every `:` including colons inside an arbitrary
// value, so `bg-[url(http://x)]` yields a `bg-[url(http` variant.
// This matches the behaviour existing sort output depends on.
// `!` and fragments ending in `:` such as `hover:` are the only
// non-empty inputs that yield an empty Base.
func ParseClass(fragment string) Token {
	t := Token{Raw: fragment}
	rest := fragment
	if strings.HasPrefix(rest, ImportantMarker) {
		t.Important = true
		rest = rest[len(ImportantMarker):]
	}
	if strings.Contains(rest, VariantSeparator) {
		parts := strings.Split(rest, VariantSeparator)
		t.Variants = parts[:len(parts)-1]
		t.Base = parts[len(parts)-1]
	} else {
		t.Variants = []string{}
		t.Base = rest
	}
	t.Arbitrary, t.HasArbitrary = extractArbitrary(t.Base)
	return t
}

// extractArbitrary returns content between the first `[` and its matching `]`
func extractArbitrary(base string) (string, bool) {
	if !ArbitraryValue(base) {
		return "", false
	}
	start := strings.Index(base, "[")
	depth := 0
	for i := start; i < len(base); i++ {
		switch base[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return base[start+1 : i], true
			}
		}
	}
	// `[` without a closing bracket after it
	return "", false
}
