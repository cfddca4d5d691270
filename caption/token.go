package caption

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a scanned token.
type Kind int

const (
	// KindCounter is a bracketed numeric literal, optionally parenthesized:
	// [01] or [(05)].
	KindCounter Kind = iota

	// KindConditional is bracketed free text followed by a parenthesized
	// integer condition: [Season Finale (12)].
	KindConditional

	// KindCycle is the literal marker "re" with a parenthesized
	// comma-separated item list: [re(A, B, C)].
	KindCycle
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindConditional:
		return "conditional"
	case KindCycle:
		return "cycle"
	}
	return "unknown"
}

// Token is one classified span of a template.
type Token struct {
	// Kind is the token classification.
	Kind Kind

	// Start and End are byte offsets of the span in the template,
	// End exclusive, brackets included.
	Start int
	End   int

	// Raw is the original span text, brackets included.
	Raw string

	// Value, Width, and Parenthesized are set for counter tokens: the
	// literal's numeric value, its digit count (padding width), and
	// whether the literal was wrapped in parens.
	Value         int
	Width         int
	Parenthesized bool

	// Text and Condition are set for conditional tokens: the literal free
	// text and the episode number that makes it appear.
	Text      string
	Condition int

	// Items is set for cycle tokens: the trimmed, non-empty item list.
	Items []string
}

// bracketPattern finds candidate spans. Brackets do not nest, so the inner
// text excludes both bracket characters.
var bracketPattern = regexp.MustCompile(`\[[^\[\]]*\]`)

var (
	counterPattern     = regexp.MustCompile(`^(\()?(\d+)(\))?$`)
	cyclePattern       = regexp.MustCompile(`^re\((.*)\)$`)
	conditionalPattern = regexp.MustCompile(`^(.+)\((\d+)\)$`)
)

// Scan finds the recognized tokens in a template, in source order. Spans
// that match no grammar are not returned; the renderer leaves them as
// literal text.
func Scan(template string) []Token {
	var tokens []Token
	for _, loc := range bracketPattern.FindAllStringIndex(template, -1) {
		raw := template[loc[0]:loc[1]]
		tok, ok := classify(raw[1 : len(raw)-1])
		if !ok {
			continue
		}
		tok.Start = loc[0]
		tok.End = loc[1]
		tok.Raw = raw
		tokens = append(tokens, tok)
	}
	return tokens
}

// classify matches the inner bracket text against the three grammars.
// Counter is checked first: a pure-digit span is structurally exclusive and
// must never be reinterpreted as conditional. Cycle is checked before
// conditional because "re(5)" fits both shapes and the literal marker wins.
func classify(inner string) (Token, bool) {
	if m := counterPattern.FindStringSubmatch(inner); m != nil {
		// Parens must be balanced: both or neither.
		if (m[1] == "") != (m[3] == "") {
			return Token{}, false
		}
		value, err := strconv.Atoi(m[2])
		if err != nil {
			return Token{}, false
		}
		return Token{
			Kind:          KindCounter,
			Value:         value,
			Width:         len(m[2]),
			Parenthesized: m[1] != "",
		}, true
	}

	if m := cyclePattern.FindStringSubmatch(inner); m != nil {
		items := splitItems(m[1])
		if len(items) == 0 {
			// Empty after trimming: invalid, passes through.
			return Token{}, false
		}
		return Token{Kind: KindCycle, Items: items}, true
	}

	if m := conditionalPattern.FindStringSubmatch(inner); m != nil {
		text := m[1]
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || isDigits(trimmed) {
			// Blank or counter-shaped content is not free text.
			return Token{}, false
		}
		condition, err := strconv.Atoi(m[2])
		if err != nil {
			return Token{}, false
		}
		return Token{Kind: KindConditional, Text: text, Condition: condition}, true
	}

	return Token{}, false
}

// splitItems splits a cycle item list on commas, trims surrounding
// whitespace, and drops empty items.
func splitItems(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// isDigits reports whether s is non-empty and consists only of ASCII
// digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
