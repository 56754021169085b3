package linebreak

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sentenceEnd = regexp.MustCompile(`[.?!]\s+`)

// SplitSentences splits text at sentence terminators using the default options.
func SplitSentences(text string) []string {
	return defaultBreaker.SplitSentences(text)
}

// SplitSentences partitions text at '.', '?' or '!' followed by whitespace.
// A boundary is skipped when the period closes a known abbreviation or an
// initial, or when either side would be shorter than MinSentenceLength.
// Each returned sentence is trimmed and keeps its punctuation. Text without
// an accepted boundary is returned unchanged as the only element.
func (b *Breaker) SplitSentences(text string) []string {
	locs := sentenceEnd.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	var out []string
	start := 0
	for _, loc := range locs {
		punct, next := loc[0], loc[1]
		if next >= len(text) {
			continue
		}
		if text[punct] == '.' && b.isAbbreviation(text[start:punct]) {
			continue
		}
		head := strings.TrimSpace(text[start : punct+1])
		tail := strings.TrimSpace(text[next:])
		if runeLen(head) < b.opts.MinSentenceLength || runeLen(tail) < b.opts.MinSentenceLength {
			continue
		}
		out = append(out, head)
		start = next
	}
	if len(out) == 0 {
		return []string{text}
	}
	return append(out, strings.TrimSpace(text[start:]))
}

// isAbbreviation reports whether before ends with an abbreviation or a
// single upper-case initial.
func (b *Breaker) isAbbreviation(before string) bool {
	words := lastWords(before, b.maxWords)
	if len(words) == 0 {
		return false
	}
	if isInitial(trimOpening(words[len(words)-1])) {
		return true
	}
	for _, a := range b.abbrevs {
		if len(a) > len(words) {
			continue
		}
		tail := words[len(words)-len(a):]
		match := true
		for i, w := range a {
			got := tail[i]
			if i == 0 {
				got = trimOpening(got)
			}
			if got != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// lastWords returns up to n whitespace-separated words from the end of s.
// The result is empty when s ends in whitespace.
func lastWords(s string, n int) []string {
	if s == "" || isSpace(s[len(s)-1]) {
		return nil
	}
	words := make([]string, 0, n)
	end := len(s)
	for end > 0 && len(words) < n {
		i := end
		for i > 0 && !isSpace(s[i-1]) {
			i--
		}
		words = append(words, s[i:end])
		for i > 0 && isSpace(s[i-1]) {
			i--
		}
		end = i
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return words
}

func trimOpening(word string) string {
	return strings.TrimLeft(word, "([{\"'*_“‘")
}

func isInitial(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return size > 0 && size == len(word) && unicode.IsUpper(r)
}
