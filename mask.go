package linebreak

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	citationPattern = regexp.MustCompile(`\[@[^\[\]]+\]`)
	numberPattern   = regexp.MustCompile(`[-+]?\d+\.\d+`)
)

const (
	citationPrefix = "__CITATION_"
	numberPrefix   = "__N_"
	tokenSuffix    = "__"
)

// Placeholder maps a masking token back to the text it replaced.
type Placeholder struct {
	Token    string
	Original string
}

// Table is an insertion-ordered restoration table for one token family.
type Table []Placeholder

// Lookup returns the original text for token.
func (t Table) Lookup(token string) (string, bool) {
	for _, p := range t {
		if p.Token == token {
			return p.Original, true
		}
	}
	return "", false
}

// Masked is the result of Mask.
type Masked struct {
	Text      string
	Citations Table
	Numbers   Table
}

// Mask replaces citations and decimal numbers in text with placeholder
// tokens. Citations are masked first so digits inside them are never seen by
// the number pattern. A range such as 0.28-0.89 masks as two adjacent tokens,
// the hyphen travelling with the second number.
func Mask(text string) Masked {
	var m Masked
	text = maskPattern(text, citationPattern, citationPrefix, &m.Citations)
	m.Text = maskPattern(text, numberPattern, numberPrefix, &m.Numbers)
	return m
}

// Restore replaces the tokens of this mask in text with their originals.
func (m Masked) Restore(text string) string {
	return Restore(text, m.Citations, m.Numbers)
}

// Restore replaces every token from the given tables in text with its
// original value in a single pass.
func Restore(text string, citations, numbers Table) string {
	n := len(citations) + len(numbers)
	if n == 0 {
		return text
	}
	pairs := make([]string, 0, 2*n)
	for _, p := range citations {
		pairs = append(pairs, p.Token, p.Original)
	}
	for _, p := range numbers {
		pairs = append(pairs, p.Token, p.Original)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func maskPattern(text string, re *regexp.Regexp, prefix string, table *Table) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		token := prefix + strconv.Itoa(len(*table)) + tokenSuffix
		*table = append(*table, Placeholder{Token: token, Original: match})
		return token
	})
}
