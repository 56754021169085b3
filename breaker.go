package linebreak

import (
	"strings"
	"unicode/utf8"
)

// Breaker applies the line-breaking rules with a fixed set of Options.
// A Breaker is immutable and safe for concurrent use.
type Breaker struct {
	opts     Options
	abbrevs  [][]string
	maxWords int
}

// New returns a Breaker configured from the defaults and opts.
func New(opts ...Option) *Breaker {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return newBreaker(cfg)
}

func newBreaker(cfg Options) *Breaker {
	b := &Breaker{opts: cfg, maxWords: 1}
	for _, a := range cfg.Abbreviations {
		words := strings.Fields(a)
		if len(words) == 0 {
			continue
		}
		b.abbrevs = append(b.abbrevs, words)
		if len(words) > b.maxWords {
			b.maxWords = len(words)
		}
	}
	return b
}

// With returns a copy of b with opts applied on top of its options.
func (b *Breaker) With(opts ...Option) *Breaker {
	if len(opts) == 0 {
		return b
	}
	cfg := b.Options()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return newBreaker(cfg)
}

// Options returns a copy of the options b was built with.
func (b *Breaker) Options() Options {
	cfg := b.opts
	cfg.Abbreviations = append([]string(nil), b.opts.Abbreviations...)
	return cfg
}

var defaultBreaker = New()

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// splitPair trims both halves and reports whether each is non-empty and at
// least minPart runes long.
func splitPair(head, tail string, minPart int) ([]string, bool) {
	head = strings.TrimSpace(head)
	tail = strings.TrimSpace(tail)
	if head == "" || tail == "" {
		return nil, false
	}
	if runeLen(head) < minPart || runeLen(tail) < minPart {
		return nil, false
	}
	return []string{head, tail}, true
}

// splitAll applies split to text and then to every part it yields until no
// part splits further. Each split must produce strictly shorter parts.
func splitAll(text string, split func(string) []string) []string {
	parts := split(text)
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, splitAll(p, split)...)
	}
	return out
}
